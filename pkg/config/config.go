package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"belvedere-rss/pkg/domain"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config is the runtime configuration of the generator. Every field has a
// built-in default, so an absent or partial config file is fine.
type Config struct {
	BaseURL             string        `yaml:"base_url"`
	NewsURL             string        `yaml:"news_url"`
	UserAgent           string        `yaml:"user_agent"`
	FetchTimeoutSeconds int           `yaml:"fetch_timeout_seconds"`
	MaxCandidates       int           `yaml:"max_candidates"`
	DescriptionLimit    int           `yaml:"description_limit"`
	Channel             ChannelConfig `yaml:"channel"`
}

// ChannelConfig is the channel-level feed metadata.
type ChannelConfig struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	Language       string `yaml:"language"`
	ManagingEditor string `yaml:"managing_editor"`
	WebMaster      string `yaml:"web_master"`
	SelfURL        string `yaml:"self_url"`
}

// Default returns the built-in City of Belvedere configuration.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and fills every unset field with its
// default. An empty path means "config.yaml"; a missing file is not an
// error and yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	setDefaults(cfg)
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.cityofbelvedere.org"
	}
	if cfg.NewsURL == "" {
		cfg.NewsURL = cfg.BaseURL + "/news"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 30
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 20
	}
	if cfg.DescriptionLimit <= 0 {
		cfg.DescriptionLimit = 500
	}

	ch := &cfg.Channel
	if ch.Title == "" {
		ch.Title = "City of Belvedere News"
	}
	if ch.Description == "" {
		ch.Description = "Official news and updates from the City of Belvedere, California"
	}
	if ch.Language == "" {
		ch.Language = "en-us"
	}
	if ch.ManagingEditor == "" {
		ch.ManagingEditor = "clerk@cityofbelvedere.org (City of Belvedere)"
	}
	if ch.WebMaster == "" {
		ch.WebMaster = ch.ManagingEditor
	}
	if ch.SelfURL == "" {
		ch.SelfURL = cfg.BaseURL + "/rss.xml"
	}
}

// ChannelMeta converts the channel section into the domain metadata record.
// The channel link is the news page itself.
func (c *Config) ChannelMeta() domain.ChannelMeta {
	return domain.ChannelMeta{
		Title:          c.Channel.Title,
		Link:           c.NewsURL,
		Description:    c.Channel.Description,
		Language:       c.Channel.Language,
		ManagingEditor: c.Channel.ManagingEditor,
		WebMaster:      c.Channel.WebMaster,
		SelfURL:        c.Channel.SelfURL,
	}
}

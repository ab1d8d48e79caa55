package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"BaseURL", cfg.BaseURL, "https://www.cityofbelvedere.org"},
		{"NewsURL", cfg.NewsURL, "https://www.cityofbelvedere.org/news"},
		{"Channel.Title", cfg.Channel.Title, "City of Belvedere News"},
		{"Channel.Language", cfg.Channel.Language, "en-us"},
		{"Channel.ManagingEditor", cfg.Channel.ManagingEditor, "clerk@cityofbelvedere.org (City of Belvedere)"},
		{"Channel.WebMaster", cfg.Channel.WebMaster, "clerk@cityofbelvedere.org (City of Belvedere)"},
		{"Channel.SelfURL", cfg.Channel.SelfURL, "https://www.cityofbelvedere.org/rss.xml"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}

	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("FetchTimeoutSeconds = %d, want 30", cfg.FetchTimeoutSeconds)
	}
	if cfg.MaxCandidates != 20 {
		t.Errorf("MaxCandidates = %d, want 20", cfg.MaxCandidates)
	}
	if cfg.DescriptionLimit != 500 {
		t.Errorf("DescriptionLimit = %d, want 500", cfg.DescriptionLimit)
	}
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
base_url: https://news.example.org
max_candidates: 10
channel:
  title: Example Town News
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BaseURL != "https://news.example.org" {
		t.Errorf("BaseURL = %q, want override", cfg.BaseURL)
	}
	if cfg.NewsURL != "https://news.example.org/news" {
		t.Errorf("NewsURL = %q, want derived from overridden base", cfg.NewsURL)
	}
	if cfg.MaxCandidates != 10 {
		t.Errorf("MaxCandidates = %d, want 10", cfg.MaxCandidates)
	}
	if cfg.Channel.Title != "Example Town News" {
		t.Errorf("Channel.Title = %q, want override", cfg.Channel.Title)
	}
	// Unset fields keep their defaults.
	if cfg.Channel.Language != "en-us" {
		t.Errorf("Channel.Language = %q, want default", cfg.Channel.Language)
	}
	if cfg.FetchTimeoutSeconds != 30 {
		t.Errorf("FetchTimeoutSeconds = %d, want default", cfg.FetchTimeoutSeconds)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Channel.Title != "City of Belvedere News" {
		t.Errorf("Channel.Title = %q, want default", cfg.Channel.Title)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}

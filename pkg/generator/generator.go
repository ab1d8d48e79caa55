package generator

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"belvedere-rss/pkg/config"
	"belvedere-rss/pkg/content"
	"belvedere-rss/pkg/dates"
	"belvedere-rss/pkg/feed"
	"belvedere-rss/pkg/httpclient"
	"belvedere-rss/pkg/scraper"
)

// Generator wires the fetch → segment → assemble pipeline for one run.
// Every run is stateless: nothing is cached or carried across invocations.
type Generator struct {
	cfg       *config.Config
	client    *httpclient.Client
	norm      *dates.Normalizer
	segmenter *scraper.Segmenter

	// Progress receives the user-facing status lines; defaults to stdout.
	Progress io.Writer
}

// New builds a generator from the given configuration.
func New(cfg *config.Config) (*Generator, error) {
	norm := dates.NewNormalizer()
	extractor, err := content.NewExtractor(cfg.BaseURL, norm, cfg.DescriptionLimit)
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:       cfg,
		client:    httpclient.New(cfg.UserAgent, time.Duration(cfg.FetchTimeoutSeconds)*time.Second),
		norm:      norm,
		segmenter: scraper.NewSegmenter(extractor, cfg.MaxCandidates),
		Progress:  os.Stdout,
	}, nil
}

// Run fetches the news page, extracts articles and produces the RSS feed.
// With a non-empty outputFile the XML is written there and the returned
// text is empty; with an empty outputFile the XML is returned. A fetch
// failure or an empty article list fails the whole run.
func (g *Generator) Run(outputFile string) (string, error) {
	g.printf("Fetching Belvedere news page...")
	page, err := g.client.FetchPage(g.cfg.NewsURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news page: %w", err)
	}

	g.printf("Parsing articles...")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse news page: %w", err)
	}
	articles := g.segmenter.Articles(doc)
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles found on the page")
	}

	g.printf("Found %d articles", len(articles))
	for i, a := range articles {
		if i == 5 {
			break
		}
		g.printf("  %d. %s", i+1, a.Title)
	}
	if len(articles) > 5 {
		g.printf("  ... and %d more", len(articles)-5)
	}

	g.printf("Generating RSS feed...")
	doc2 := feed.Assemble(articles, g.cfg.ChannelMeta(), g.norm.CurrentTimestamp())
	xmlText, err := feed.Serialize(doc2)
	if err != nil {
		return "", err
	}
	if n, err := feed.Validate(xmlText); err != nil {
		g.printf("Warning: %v", err)
	} else {
		g.printf("Validated feed: %d items", n)
	}

	if outputFile == "" {
		return xmlText, nil
	}
	if err := os.WriteFile(outputFile, []byte(xmlText), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	g.printf("RSS feed saved to %s", outputFile)
	return "", nil
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(g.Progress, format+"\n", args...)
}

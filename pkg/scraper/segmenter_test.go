package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"belvedere-rss/pkg/content"
	"belvedere-rss/pkg/dates"
)

const testBase = "https://www.cityofbelvedere.org"

func newTestSegmenter(t *testing.T, maxCandidates int) *Segmenter {
	t.Helper()
	extractor, err := content.NewExtractor(testBase, dates.NewNormalizer(), 500)
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return NewSegmenter(extractor, maxCandidates)
}

func parseDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

func TestSegment_Tier1SelectsExactlyTheContainers(t *testing.T) {
	s := newTestSegmenter(t, 20)
	page := `<html><body>
		<nav><a href="/about">About</a><a href="/contact">Contact</a></nav>
		<div class="news-item"><h3>Story One</h3><a href="/news/one">more</a></div>
		<div class="news-item"><h3>Story Two</h3><a href="/news/two">more</a></div>
		<div class="news-item"><h3>Story Three</h3><a href="/news/three">more</a></div>
	</body></html>`

	candidates := s.Segment(parseDoc(t, page))
	if len(candidates) != 3 {
		t.Fatalf("Segment returned %d candidates, want exactly the 3 news-item containers", len(candidates))
	}
	for _, c := range candidates {
		class, _ := c.Attr("class")
		if class != "news-item" {
			t.Errorf("candidate class = %q, want news-item (no fallback tier should run)", class)
		}
	}
}

func TestArticles_Tier1(t *testing.T) {
	s := newTestSegmenter(t, 20)
	page := `<html><body>
		<div class="news-item"><h3>Story One</h3>Posted on May 20, 2025. First summary.<a href="/news/one">more</a></div>
		<div class="news-item"><h3>Story Two</h3>Second summary.<a href="/news/two">more</a></div>
	</body></html>`

	articles := s.Articles(parseDoc(t, page))
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].Title != "Story One" || articles[1].Title != "Story Two" {
		t.Errorf("titles = %q, %q; document order not preserved", articles[0].Title, articles[1].Title)
	}
	if articles[0].Link != testBase+"/news/one" {
		t.Errorf("link = %q, want absolute URL", articles[0].Link)
	}
	if !strings.HasSuffix(articles[0].PubDate, "-0700") {
		t.Errorf("PubDate = %q, want posted date with daylight offset", articles[0].PubDate)
	}
}

func TestArticles_Tier2ContainerFallback(t *testing.T) {
	s := newTestSegmenter(t, 20)
	// No tier-1 container classes, but a generic block with text and an
	// internal link.
	page := `<html><body>
		<div class="row">
			<h3>Pier Repairs Scheduled</h3>
			<p>Work begins next month.</p>
			<a href="/updates/pier-repairs">Details</a>
		</div>
	</body></html>`

	articles := s.Articles(parseDoc(t, page))
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 from the container fallback", len(articles))
	}
	if articles[0].Title != "Pier Repairs Scheduled" {
		t.Errorf("Title = %q", articles[0].Title)
	}
	if articles[0].Link != testBase+"/updates/pier-repairs" {
		t.Errorf("Link = %q, want absolute", articles[0].Link)
	}
}

func TestArticles_Tier3LinkFallback(t *testing.T) {
	s := newTestSegmenter(t, 20)
	// No structured containers at all, just bare relative links.
	page := `<html><body>
		<p><a href="/news/ferry-update">Ferry Update</a></p>
		<p><a href="https://example.com/elsewhere">External</a></p>
	</body></html>`

	articles := s.Articles(parseDoc(t, page))
	if len(articles) == 0 {
		t.Fatal("tier 3 produced no articles, want at least 1")
	}
	if articles[0].Title != "Ferry Update" {
		t.Errorf("Title = %q, want %q", articles[0].Title, "Ferry Update")
	}
	if !strings.HasPrefix(articles[0].Link, "https://") {
		t.Errorf("Link = %q, want absolute", articles[0].Link)
	}
	for _, a := range articles {
		if strings.Contains(a.Link, "example.com") {
			t.Errorf("external link %q should not become a candidate", a.Link)
		}
	}
}

func TestArticles_DuplicateLinksDropped(t *testing.T) {
	s := newTestSegmenter(t, 20)
	page := `<html><body>
		<div class="news-item"><h3>Original</h3><a href="/news/same">more</a></div>
		<div class="news-item"><h3>Duplicate</h3><a href="/news/same">more</a></div>
	</body></html>`

	articles := s.Articles(parseDoc(t, page))
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 after dedup", len(articles))
	}
	if articles[0].Title != "Original" {
		t.Errorf("kept %q, want first occurrence to win", articles[0].Title)
	}
}

func TestArticles_CandidateCap(t *testing.T) {
	s := newTestSegmenter(t, 20)
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, `<div class="news-item"><h3>Story %d</h3><a href="/news/%d">more</a></div>`, i, i)
	}
	b.WriteString("</body></html>")

	articles := s.Articles(parseDoc(t, b.String()))
	if len(articles) != 20 {
		t.Errorf("got %d articles, want the first 20 candidates only", len(articles))
	}
}

func TestArticles_InvalidCandidatesSkipped(t *testing.T) {
	s := newTestSegmenter(t, 20)
	page := `<html><body>
		<div class="news-item"><h3>No Link Here</h3><p>text only</p></div>
		<div class="news-item"><h3>Valid</h3><a href="/news/valid">more</a></div>
	</body></html>`

	articles := s.Articles(parseDoc(t, page))
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 (linkless candidate dropped)", len(articles))
	}
	if articles[0].Title != "Valid" {
		t.Errorf("kept %q, want %q", articles[0].Title, "Valid")
	}
}

func TestInternalLink(t *testing.T) {
	cases := []struct {
		href string
		want bool
	}{
		{"/news/item", true},
		{"/about", true},
		{"https://www.cityofbelvedere.org/news/item", true},
		{"https://example.com/page", false},
		{"mailto:clerk@cityofbelvedere.org", false},
	}
	for _, c := range cases {
		if got := internalLink(c.href); got != c.want {
			t.Errorf("internalLink(%q) = %v, want %v", c.href, got, c.want)
		}
	}
}

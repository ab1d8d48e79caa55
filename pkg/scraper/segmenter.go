package scraper

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"belvedere-rss/pkg/content"
	"belvedere-rss/pkg/domain"
)

// tier1Selectors are the structural guesses for "this looks like an article
// container", most specific first. The first selector with any match
// supplies the whole candidate set.
var tier1Selectors = []string{
	"article",
	".post",
	".news-item",
	".entry",
	`[class*="post"]`,
	`[class*="article"]`,
	`[class*="news"]`,
}

// strategy proposes candidate elements for one tier of the cascade.
type strategy func(doc *goquery.Document) []*goquery.Selection

// Segmenter turns a parsed news page into a deduplicated list of article
// records. The page offers no reliable schema, so candidates come from an
// ordered cascade of increasingly permissive strategies.
type Segmenter struct {
	extractor     *content.Extractor
	strategies    []strategy
	maxCandidates int
}

// NewSegmenter creates a segmenter with the standard three-tier cascade.
func NewSegmenter(extractor *content.Extractor, maxCandidates int) *Segmenter {
	if maxCandidates <= 0 {
		maxCandidates = 20
	}
	return &Segmenter{
		extractor:     extractor,
		strategies:    []strategy{selectorCandidates, containerCandidates, linkCandidates},
		maxCandidates: maxCandidates,
	}
}

// Segment runs the cascade and returns the first non-empty tier's
// candidates in document order.
func (s *Segmenter) Segment(doc *goquery.Document) []*goquery.Selection {
	for _, strat := range s.strategies {
		if found := strat(doc); len(found) > 0 {
			return found
		}
	}
	return nil
}

// Articles segments the document, extracts a record per candidate, drops
// invalid records and duplicate links (first occurrence wins). A failure on
// one candidate is logged and skipped; it never aborts the page.
func (s *Segmenter) Articles(doc *goquery.Document) []domain.Article {
	candidates := s.Segment(doc)
	if len(candidates) > s.maxCandidates {
		candidates = candidates[:s.maxCandidates]
	}

	seen := make(map[string]bool)
	var articles []domain.Article
	for i, cand := range candidates {
		article, err := s.extractOne(cand)
		if err != nil {
			log.Printf("Error processing article element %d: %v", i+1, err)
			continue
		}
		if !article.Valid() || seen[article.Link] {
			continue
		}
		seen[article.Link] = true
		articles = append(articles, article)
	}
	return articles
}

// extractOne shields the run from a malformed candidate: a panic while
// processing one element becomes an error for that element only.
func (s *Segmenter) extractOne(cand *goquery.Selection) (article domain.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("candidate extraction panicked: %v", r)
		}
	}()
	return s.extractor.Extract(cand), nil
}

// selectorCandidates is tier 1: the fixed selector list.
func selectorCandidates(doc *goquery.Document) []*goquery.Selection {
	for _, selector := range tier1Selectors {
		if found := doc.Find(selector); found.Length() > 0 {
			return splitSelection(found)
		}
	}
	return nil
}

// containerCandidates is tier 2: generic block containers that carry text
// and at least one internal-looking link.
func containerCandidates(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" {
			return
		}
		hasInternal := false
		sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if internalLink(href) {
				hasInternal = true
				return false
			}
			return true
		})
		if hasInternal {
			out = append(out, sel)
		}
	})
	return out
}

// linkCandidates is tier 3: every internal-looking link with visible text
// becomes a pseudo-article, represented by its nearest containing element
// (or the link itself when it has no parent).
func linkCandidates(doc *goquery.Document) []*goquery.Selection {
	var out []*goquery.Selection
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !internalLink(href) || strings.TrimSpace(a.Text()) == "" {
			return
		}
		if parent := a.Parent(); parent.Length() > 0 {
			out = append(out, parent)
		} else {
			out = append(out, a)
		}
	})
	return out
}

// internalLink reports whether href looks like it points at the site itself
// rather than an external destination.
func internalLink(href string) bool {
	return strings.Contains(href, "/news") || strings.HasPrefix(href, "/")
}

func splitSelection(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

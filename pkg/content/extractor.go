package content

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"belvedere-rss/pkg/dates"
	"belvedere-rss/pkg/domain"
)

// Extractor derives article fields from one candidate element. A field that
// cannot be extracted degrades to its zero value; extraction never fails a
// candidate outright.
type Extractor struct {
	base      *url.URL
	dates     *dates.Normalizer
	descLimit int
}

// NewExtractor creates an extractor that resolves relative links against
// baseURL and truncates descriptions at descLimit characters.
func NewExtractor(baseURL string, norm *dates.Normalizer, descLimit int) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %s: %w", baseURL, err)
	}
	if descLimit <= 0 {
		descLimit = 500
	}
	return &Extractor{base: base, dates: norm, descLimit: descLimit}, nil
}

// Extract builds an article record from a candidate element.
func (e *Extractor) Extract(sel *goquery.Selection) domain.Article {
	title := e.extractTitle(sel)
	text := visibleText(sel)
	return domain.Article{
		Title:       title,
		Link:        e.extractLink(sel),
		Description: e.buildDescription(text, title),
		PubDate:     e.dates.ExtractDate(text),
	}
}

var titleClass = regexp.MustCompile(`(?i)title|headline`)

// extractTitle tries, in order: the first heading (h1 through h4, document
// order), the first link's visible text, and finally any element whose class
// mentions "title" or "headline".
func (e *Extractor) extractTitle(sel *goquery.Selection) string {
	if h := sel.Find("h1, h2, h3, h4").First(); h.Length() > 0 {
		return visibleText(h)
	}
	if a := sel.Find("a").First(); a.Length() > 0 {
		return visibleText(a)
	}
	titled := sel.Find("*").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return titleClass.MatchString(class)
	}).First()
	if titled.Length() > 0 {
		return visibleText(titled)
	}
	return ""
}

// extractLink resolves the first linked href against the site base URL, so
// relative references become absolute.
func (e *Extractor) extractLink(sel *goquery.Selection) string {
	a := sel.Find("a[href]").First()
	if a.Length() == 0 {
		return ""
	}
	href, _ := a.Attr("href")
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return e.base.ResolveReference(ref).String()
}

// postedPrefix matches a leading "Posted on <date>," / "Published on
// <date>:" phrase; the date is already captured separately as pubDate.
var postedPrefix = regexp.MustCompile(`(?i)^(?:posted|published)\s+on\s+(?:[A-Za-z]+\s+\d{1,2},?\s+\d{4}|\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{1,2}-\d{1,2})[,:]?\s*`)

func (e *Extractor) buildDescription(text, title string) string {
	desc := text
	if title != "" && strings.HasPrefix(desc, title) {
		desc = strings.TrimSpace(desc[len(title):])
	}
	desc = postedPrefix.ReplaceAllString(desc, "")
	if r := []rune(desc); len(r) > e.descLimit {
		desc = string(r[:e.descLimit]) + "..."
	}
	return strings.TrimSpace(desc)
}

// visibleText renders a selection the way a reader sees it: every text node
// trimmed, empties dropped, the rest joined with single spaces. goquery's
// Text() inserts no separator between adjacent elements, which would glue
// a heading to the paragraph after it.
func visibleText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, strings.Join(strings.Fields(t), " "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

package feed

import (
	"encoding/xml"
	"fmt"

	"belvedere-rss/pkg/domain"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

// RSS is the <rss> document root.
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel Channel  `xml:"channel"`
}

// Channel carries the feed metadata followed by the items. Field order here
// is the element order feed readers expect.
type Channel struct {
	Title          string   `xml:"title"`
	Link           string   `xml:"link"`
	Description    string   `xml:"description"`
	Language       string   `xml:"language"`
	LastBuildDate  string   `xml:"lastBuildDate"`
	ManagingEditor string   `xml:"managingEditor"`
	WebMaster      string   `xml:"webMaster"`
	AtomLink       AtomLink `xml:"atom:link"`
	Items          []Item   `xml:"item"`
}

// AtomLink is the feed's self-referencing link.
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// Item is one feed entry.
type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        GUID   `xml:"guid"`
}

// GUID is a permalink-style item identifier: the value is the article link
// itself, flagged as a dereferenceable URL.
type GUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Assemble maps articles onto an RSS document in their given order; no
// re-sorting by date. buildDate stamps lastBuildDate and should already be
// a formatted Pacific timestamp.
func Assemble(articles []domain.Article, meta domain.ChannelMeta, buildDate string) *RSS {
	ch := Channel{
		Title:          meta.Title,
		Link:           meta.Link,
		Description:    meta.Description,
		Language:       meta.Language,
		LastBuildDate:  buildDate,
		ManagingEditor: meta.ManagingEditor,
		WebMaster:      meta.WebMaster,
		AtomLink: AtomLink{
			Href: meta.SelfURL,
			Rel:  "self",
			Type: "application/rss+xml",
		},
	}
	for _, a := range articles {
		ch.Items = append(ch.Items, Item{
			Title:       a.Title,
			Link:        a.Link,
			Description: a.Description,
			PubDate:     a.PubDate,
			GUID:        GUID{IsPermaLink: "true", Value: a.Link},
		})
	}
	return &RSS{Version: "2.0", AtomNS: atomNamespace, Channel: ch}
}

// Serialize renders the document as pretty-printed UTF-8 XML with 2-space
// indentation. If indentation fails the compact form is returned instead;
// pretty-printing problems never fail a run on their own.
func Serialize(doc *RSS) (string, error) {
	pretty, err := xml.MarshalIndent(doc, "", "  ")
	if err == nil {
		return xml.Header + string(pretty) + "\n", nil
	}

	raw, rawErr := xml.Marshal(doc)
	if rawErr != nil {
		return "", fmt.Errorf("failed to serialize feed: %w", rawErr)
	}
	return xml.Header + string(raw) + "\n", nil
}

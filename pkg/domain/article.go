package domain

// Article represents one news item discovered on the page.
type Article struct {
	Title       string
	Link        string // absolute URL; dedup key and feed item GUID
	Description string
	PubDate     string // RFC-822 style timestamp in Pacific time
}

// Valid reports whether the article carries the fields a feed item requires.
func (a Article) Valid() bool {
	return a.Title != "" && a.Link != ""
}

// ChannelMeta holds the channel-level metadata of the generated feed.
type ChannelMeta struct {
	Title          string
	Link           string
	Description    string
	Language       string
	ManagingEditor string
	WebMaster      string
	SelfURL        string
}

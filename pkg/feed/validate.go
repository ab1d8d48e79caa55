package feed

import (
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Validate re-parses serialized feed XML the way a feed reader would and
// returns the item count. Catches malformed output before it is published.
func Validate(xmlText string) (int, error) {
	parsed, err := gofeed.NewParser().ParseString(xmlText)
	if err != nil {
		return 0, fmt.Errorf("generated feed does not parse: %w", err)
	}
	return len(parsed.Items), nil
}

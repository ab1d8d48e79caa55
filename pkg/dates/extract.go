package dates

import "regexp"

// datePatterns are tried in priority order against the article text; the
// first match's captured substring is the date. Explicit "Posted on" /
// "Published on" phrases outrank bare dates so boilerplate wins over dates
// mentioned mid-sentence.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)posted\s+on\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)published\s+on\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`([A-Za-z]+\s+\d{1,2},\s+\d{4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{4}-\d{1,2}-\d{1,2})`),
}

// ExtractDate finds the first date-bearing substring in free text and
// returns it normalized. With no match it returns the current Pacific time.
func (n *Normalizer) ExtractDate(text string) string {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return n.Normalize(m[1])
		}
	}
	return n.CurrentTimestamp()
}

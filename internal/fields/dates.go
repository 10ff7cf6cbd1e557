package fields

import (
	"regexp"
	"strings"
	"time"

	"github.com/akaraszi/billscan/constants"
)

// Date layouts tried in order, per language. US-style month-first for
// English, dotted year-first for Hungarian. ISO dates parse everywhere.
var (
	commonLayouts = []string{
		"2006-01-02",
		"2006/01/02",
	}
	englishLayouts = []string{
		"01/02/2006",
		"01-02-2006",
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
	}
	hungarianLayouts = []string{
		"2006.01.02.",
		"2006.01.02",
		"2006. 01. 02.",
		"2006. 01. 02",
	}
)

var reDateSpaces = regexp.MustCompile(`\s+`)

// ParseDate normalizes a locale-formatted date string to a UTC calendar
// date. Raw locale strings never leak past this point.
func ParseDate(raw string, lang constants.Language) (time.Time, bool) {
	s := reDateSpaces.ReplaceAllString(strings.TrimSpace(raw), " ")
	if s == "" {
		return time.Time{}, false
	}

	layouts := append([]string{}, commonLayouts...)
	if lang == constants.LangHungarian {
		layouts = append(layouts, hungarianLayouts...)
		layouts = append(layouts, englishLayouts...)
	} else {
		layouts = append(layouts, englishLayouts...)
		layouts = append(layouts, hungarianLayouts...)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

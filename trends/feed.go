package trends

import (
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
)

// maxFeedItems bounds how many feed entries are considered per selection.
const maxFeedItems = 20

// FeedSelector draws the daily niche from the item titles of an RSS/Atom
// feed, falling back to the static rotation whenever the feed is unreachable
// or empty.
type FeedSelector struct {
	feedURL  string
	parser   *gofeed.Parser
	fallback *Selector
	intn     func(n int) int
}

// NewFeedSelector returns a FeedSelector for the given feed URL.
func NewFeedSelector(feedURL string) *FeedSelector {
	return &FeedSelector{
		feedURL:  feedURL,
		parser:   gofeed.NewParser(),
		fallback: NewSelector(),
		intn:     rand.Intn,
	}
}

// DailyTrend fetches the feed and picks one item title as the niche.
func (f *FeedSelector) DailyTrend() Trend {
	feed, err := f.parser.ParseURL(f.feedURL)
	if err != nil {
		log.Printf("trend feed fetch failed, using static niches: %v", err)
		return f.fallback.DailyTrend()
	}

	items := feed.Items
	if len(items) > maxFeedItems {
		items = items[:maxFeedItems]
	}
	if len(items) == 0 {
		return f.fallback.DailyTrend()
	}

	title := strings.ToLower(strings.TrimSpace(items[f.intn(len(items))].Title))
	if title == "" {
		return f.fallback.DailyTrend()
	}
	return makeTrend(title)
}

// FromEnv returns the feed-backed source when TREND_FEED_URL is set and the
// static selector otherwise.
func FromEnv() Source {
	if feedURL := strings.TrimSpace(os.Getenv("TREND_FEED_URL")); feedURL != "" {
		return NewFeedSelector(feedURL)
	}
	return NewSelector()
}

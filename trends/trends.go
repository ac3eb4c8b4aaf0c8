package trends

import (
	"math/rand"
	"strings"
)

// Niches is the fixed rotation of viral product categories used to bias
// catalog search. Keywords are derived by splitting on whitespace.
var Niches = []string{
	"creative home utilities",
	"tech gadgets for desk setup",
	"innovative pet toys",
	"smart beauty and personal care",
	"practical car accessories",
}

// Trend is the day's selected niche plus its tokenized keywords.
type Trend struct {
	Niche    string   `json:"niche"`
	Keywords []string `json:"keywords"`
}

// Source produces one trend per invocation.
type Source interface {
	DailyTrend() Trend
}

// Selector picks uniformly at random from a fixed niche list. It keeps no
// state between invocations beyond its RNG.
type Selector struct {
	niches []string
	intn   func(n int) int
}

// NewSelector returns a Selector over the default niche rotation.
func NewSelector() *Selector {
	return NewSelectorWithNiches(Niches)
}

// NewSelectorWithNiches returns a Selector over a custom niche list. Empty
// lists fall back to the default rotation.
func NewSelectorWithNiches(niches []string) *Selector {
	if len(niches) == 0 {
		niches = Niches
	}
	return &Selector{niches: niches, intn: rand.Intn}
}

// DailyTrend returns one niche chosen uniformly at random.
func (s *Selector) DailyTrend() Trend {
	return makeTrend(s.niches[s.intn(len(s.niches))])
}

func makeTrend(niche string) Trend {
	return Trend{Niche: niche, Keywords: strings.Fields(niche)}
}

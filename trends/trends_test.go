package trends

import (
	"reflect"
	"testing"
)

func TestDailyTrendStaysInList(t *testing.T) {
	s := NewSelector()
	members := map[string]bool{}
	for _, n := range Niches {
		members[n] = true
	}

	for i := 0; i < 200; i++ {
		trend := s.DailyTrend()
		if !members[trend.Niche] {
			t.Fatalf("DailyTrend returned %q, not in the niche list", trend.Niche)
		}
	}
}

func TestDailyTrendVisitsEveryNiche(t *testing.T) {
	s := NewSelector()
	seen := map[string]bool{}
	// 1000 draws over 5 niches: each member is missed with negligible probability.
	for i := 0; i < 1000; i++ {
		seen[s.DailyTrend().Niche] = true
	}
	for _, n := range Niches {
		if !seen[n] {
			t.Errorf("niche %q was never selected in 1000 draws", n)
		}
	}
}

func TestDailyTrendTokenizesKeywords(t *testing.T) {
	s := NewSelectorWithNiches([]string{"tech gadgets for desk setup"})
	trend := s.DailyTrend()
	want := []string{"tech", "gadgets", "for", "desk", "setup"}
	if !reflect.DeepEqual(trend.Keywords, want) {
		t.Fatalf("Keywords = %v, want %v", trend.Keywords, want)
	}
}

func TestSelectorEmptyListFallsBack(t *testing.T) {
	s := NewSelectorWithNiches(nil)
	if got := s.DailyTrend().Niche; got == "" {
		t.Fatal("selector over nil list returned empty niche")
	}
}

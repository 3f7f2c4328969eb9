package recommend

import (
	"math"
	"testing"
)

func TestParseYears(t *testing.T) {
	cases := []struct {
		text  string
		years float64
		ok    bool
	}{
		{"5 years", 5, true},
		{"5+ years", 5, true},
		{"0-2 years", 2, true},
		{"2.5 years", 2.5, true},
		{"fresher", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		years, ok := parseYears(c.text)
		if ok != c.ok || years != c.years {
			t.Fatalf("parseYears(%q): expected (%v,%v), got (%v,%v)", c.text, c.years, c.ok, years, ok)
		}
	}
}

func TestExperienceScore_ExactMatch(t *testing.T) {
	if got := experienceScore("5 years", "5+ years"); got != 1 {
		t.Fatalf("expected 1 for zero gap, got %v", got)
	}
}

func TestExperienceScore_Gap(t *testing.T) {
	got := experienceScore("2 years", "5 years")
	if math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("expected 0.4 for gap 3 of 5, got %v", got)
	}
}

func TestExperienceScore_FloorsAtZero(t *testing.T) {
	if got := experienceScore("10 years", "2 years"); got != 0 {
		t.Fatalf("expected 0 for a gap far past the requirement, got %v", got)
	}
}

func TestExperienceScore_UnknownIsNeutral(t *testing.T) {
	if got := experienceScore("", "5 years"); got != 0.5 {
		t.Fatalf("expected 0.5 when worker experience is unknown, got %v", got)
	}
	if got := experienceScore("5 years", "no requirement"); got != 0.5 {
		t.Fatalf("expected 0.5 when job experience is unknown, got %v", got)
	}
}

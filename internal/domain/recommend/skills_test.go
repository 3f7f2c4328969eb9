package recommend

import (
	"math"
	"testing"
)

func TestSkillsScore_IdenticalSets(t *testing.T) {
	got := skillsScore([]string{"Plumbing"}, []string{"plumbing"})
	if got != 1 {
		t.Fatalf("expected 1 for identical sets, got %v", got)
	}
}

func TestSkillsScore_DisjointSets(t *testing.T) {
	got := skillsScore([]string{"Welding"}, []string{"Accounting"})
	if got != 0 {
		t.Fatalf("expected 0 for disjoint sets, got %v", got)
	}
}

func TestSkillsScore_PartialOverlap(t *testing.T) {
	got := skillsScore([]string{"Plumbing"}, []string{"Plumbing", "Pipe Fitting"})
	if got != 0.5 {
		t.Fatalf("expected 0.5 (1 match over union of 2), got %v", got)
	}
}

func TestSkillsScore_BothEmpty(t *testing.T) {
	if got := skillsScore(nil, nil); got != 0 {
		t.Fatalf("expected 0 for two empty sets, got %v", got)
	}
	if got := skillsScore([]string{"  "}, []string{""}); got != 0 {
		t.Fatalf("expected 0 when all skills are blank, got %v", got)
	}
}

func TestSkillsScore_FuzzyMatch(t *testing.T) {
	// Misspelled worker skill still claims the job skill.
	got := skillsScore([]string{"electrcian"}, []string{"electrician"})
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 for one fuzzy match over union of 2, got %v", got)
	}
}

func TestSkillsScore_BelowThresholdNoMatch(t *testing.T) {
	// Similar-ish but below the 0.85 threshold.
	got := skillsScore([]string{"plumbing"}, []string{"pipe fitting"})
	if got != 0 {
		t.Fatalf("expected 0 below the similarity threshold, got %v", got)
	}
}

func TestSkillsScore_DuplicatesCapAtOne(t *testing.T) {
	// Duplicate worker entries collapse in the union, so the ratio is
	// capped rather than exceeding 1.
	got := skillsScore([]string{"plumbing", "plumbing"}, []string{"plumbing", "plumbing"})
	if got != 1 {
		t.Fatalf("expected score capped at 1, got %v", got)
	}
}

func TestSkillsScore_JobSkillClaimedOnce(t *testing.T) {
	// Two worker skills compete for one job skill; only one match counts.
	got := skillsScore([]string{"welding", "weldingg"}, []string{"welding"})
	if got != 0.5 {
		t.Fatalf("expected 0.5 (1 match over union of 2), got %v", got)
	}
}

package recommend

import "testing"

func TestDefaultWeights_SumExactlyOne(t *testing.T) {
	w := DefaultWeights()
	if sum := w.Skills + w.TFIDF + w.Experience + w.Location + w.Salary; sum != 1.0 {
		t.Fatalf("expected weights to sum to exactly 1.0, got %v", sum)
	}
	if err := w.Validate(); err != nil {
		t.Fatalf("expected default weights to validate, got %v", err)
	}
}

func TestWeights_ValidateRejectsBadSum(t *testing.T) {
	w := DefaultWeights()
	w.Skills = 0.5
	if err := w.Validate(); err == nil {
		t.Fatalf("expected validation error for weights not summing to 1")
	}
}

func TestWeights_Combine(t *testing.T) {
	w := DefaultWeights()
	all := Components{Skills: 1, TFIDF: 1, Experience: 1, Location: 1, Salary: 1}
	if got := w.combine(all); got != 1.0 {
		t.Fatalf("expected 1.0 for all-perfect components, got %v", got)
	}
	if got := w.combine(Components{}); got != 0 {
		t.Fatalf("expected 0 for all-zero components, got %v", got)
	}
	if got := w.combine(Components{Skills: 1}); got != 0.45 {
		t.Fatalf("expected 0.45 for skills-only, got %v", got)
	}
}

package recommend

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestSalaryOverride_Resolve(t *testing.T) {
	profile := fptr(450)

	if got := (SalaryOverride{Preference: fptr(500)}).resolve(profile); got == nil || *got != 500 {
		t.Fatalf("expected explicit preference to win, got %v", got)
	}
	if got := (SalaryOverride{Preference: fptr(500), Min: fptr(100), Max: fptr(200)}).resolve(profile); *got != 500 {
		t.Fatalf("expected preference to outrank range, got %v", *got)
	}
	if got := (SalaryOverride{Min: fptr(400), Max: fptr(600)}).resolve(profile); *got != 500 {
		t.Fatalf("expected averaged range, got %v", *got)
	}
	if got := (SalaryOverride{Min: fptr(400)}).resolve(profile); *got != 400 {
		t.Fatalf("expected lone min bound, got %v", *got)
	}
	if got := (SalaryOverride{Max: fptr(600)}).resolve(profile); *got != 600 {
		t.Fatalf("expected lone max bound, got %v", *got)
	}
	if got := (SalaryOverride{}).resolve(profile); got != profile {
		t.Fatalf("expected fallback to profile preference")
	}
	if got := (SalaryOverride{}).resolve(nil); got != nil {
		t.Fatalf("expected nil when nothing resolves, got %v", *got)
	}
}

func TestSalaryScore_InsideRange(t *testing.T) {
	r := &SalaryRange{Min: 400, Max: 600}
	if got := salaryScore(fptr(500), r); got != 1 {
		t.Fatalf("expected 1 inside range, got %v", got)
	}
	if got := salaryScore(fptr(400), r); got != 1 {
		t.Fatalf("expected 1 at lower bound, got %v", got)
	}
	if got := salaryScore(fptr(600), r); got != 1 {
		t.Fatalf("expected 1 at upper bound, got %v", got)
	}
}

func TestSalaryScore_OutsideRange(t *testing.T) {
	r := &SalaryRange{Min: 400, Max: 600}

	got := salaryScore(fptr(700), r)
	want := 1 - 100.0/700.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v above range, got %v", want, got)
	}

	if got := salaryScore(fptr(100), r); got != 0 {
		t.Fatalf("expected clamp to 0 far below range, got %v", got)
	}
}

func TestSalaryScore_UnknownIsNeutral(t *testing.T) {
	if got := salaryScore(nil, &SalaryRange{Min: 400, Max: 600}); got != 0.5 {
		t.Fatalf("expected 0.5 without a preference, got %v", got)
	}
	if got := salaryScore(fptr(500), nil); got != 0.5 {
		t.Fatalf("expected 0.5 without a declared range, got %v", got)
	}
}

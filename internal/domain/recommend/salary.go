package recommend

import "math"

// SalaryRange is a job's declared salary band.
type SalaryRange struct {
	Min float64
	Max float64
}

// SalaryOverride carries a per-request salary preference. Preference wins
// outright; otherwise a supplied min/max range collapses to its average
// (or to the single bound that is present); otherwise the worker profile's
// stored preference applies.
type SalaryOverride struct {
	Preference *float64
	Min        *float64
	Max        *float64
}

func (o SalaryOverride) resolve(profileDefault *float64) *float64 {
	if o.Preference != nil {
		return o.Preference
	}

	switch {
	case o.Min != nil && o.Max != nil:
		v := (*o.Min + *o.Max) / 2
		return &v
	case o.Min != nil:
		v := *o.Min
		return &v
	case o.Max != nil:
		v := *o.Max
		return &v
	}

	return profileDefault
}

// salaryScore rates how well a resolved preference fits the job's range.
// A missing preference or a job without a declared range is neutral.
func salaryScore(pref *float64, r *SalaryRange) float64 {
	if pref == nil || r == nil {
		return 0.5
	}

	p := *pref
	if p >= r.Min && p <= r.Max {
		return 1
	}

	dist := math.Min(math.Abs(p-r.Min), math.Abs(p-r.Max))
	return clamp01(1 - dist/math.Max(1, p))
}

package recommend

import "strings"

// locationScore is a heuristic address affinity: no geocoding is
// available, so exact and substring comparisons stand in for distance.
func locationScore(workerAddress, jobLocation string) float64 {
	ua := strings.ToLower(strings.TrimSpace(workerAddress))
	jl := strings.ToLower(strings.TrimSpace(jobLocation))
	if ua == "" || jl == "" {
		return 0.5
	}

	if ua == jl {
		return 1
	}
	if strings.Contains(jl, ua) || strings.Contains(ua, jl) {
		return 0.6
	}
	return 0
}

package recommend

import (
	"strings"

	"github.com/xrash/smetrics"
)

// skillMatchThreshold is the minimum Jaro-Winkler similarity for two skill
// strings to count as the same skill.
const skillMatchThreshold = 0.85

// skillsScore measures the overlap of two skill sets, tolerating spelling
// and phrasing variation. Each worker skill greedily claims its most
// similar unclaimed job skill; the match count is divided by the number of
// distinct normalized strings across both sets.
func skillsScore(workerSkills, jobSkills []string) float64 {
	w := normalizeSkills(workerSkills)
	j := normalizeSkills(jobSkills)
	if len(w) == 0 && len(j) == 0 {
		return 0
	}

	used := make([]bool, len(j))
	matches := 0
	for _, ws := range w {
		best := 0.0
		bestIdx := -1
		for k, js := range j {
			if used[k] {
				continue
			}
			s := smetrics.JaroWinkler(ws, js, 0.7, 4)
			if s > best {
				best = s
				bestIdx = k
			}
		}
		if bestIdx >= 0 && best >= skillMatchThreshold {
			matches++
			used[bestIdx] = true
		}
	}

	union := make(map[string]struct{}, len(w)+len(j))
	for _, s := range w {
		union[s] = struct{}{}
	}
	for _, s := range j {
		union[s] = struct{}{}
	}
	denom := len(union)
	if denom == 0 {
		denom = 1
	}

	score := float64(matches) / float64(denom)
	if score > 1 {
		return 1
	}
	return score
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

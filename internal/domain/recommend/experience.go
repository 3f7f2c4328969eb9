package recommend

import (
	"math"
	"regexp"
	"strconv"
)

var yearsPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// parseYears extracts the year count from free text like "5 years",
// "0-2 years" or "5+ years". When the text carries several numbers the
// largest wins, so a range resolves to its upper bound. ok is false when
// no number is present.
func parseYears(text string) (years float64, ok bool) {
	matches := yearsPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := math.Inf(-1)
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if v > best {
			best = v
			ok = true
		}
	}
	if !ok {
		return 0, false
	}
	return best, true
}

// experienceScore rates how close the worker's experience is to what the
// job asks for. Unknown on either side is neutral, not a penalty.
func experienceScore(workerText, jobText string) float64 {
	workerYears, wok := parseYears(workerText)
	jobYears, jok := parseYears(jobText)
	if !wok || !jok {
		return 0.5
	}

	gap := math.Abs(workerYears - jobYears)
	return math.Max(0, 1-gap/math.Max(1, jobYears))
}

package recommend

import "fmt"

// Weights configures the convex combination of component scores. It is
// passed by value into Rank so tests can substitute alternate weightings
// without touching shared state.
type Weights struct {
	Skills     float64
	TFIDF      float64
	Experience float64
	Location   float64
	Salary     float64
}

// DefaultWeights returns the weighting the marketplace ships with.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.45,
		TFIDF:      0.20,
		Experience: 0.20,
		Location:   0.10,
		Salary:     0.05,
	}
}

// Validate rejects any weighting whose sum is not exactly 1, which keeps
// every final score inside [0,1].
func (w Weights) Validate() error {
	sum := w.Skills + w.TFIDF + w.Experience + w.Location + w.Salary
	if sum != 1.0 {
		return fmt.Errorf("recommendation weights must sum to 1, got %v", sum)
	}
	return nil
}

func (w Weights) combine(c Components) float64 {
	return w.Skills*c.Skills +
		w.TFIDF*c.TFIDF +
		w.Experience*c.Experience +
		w.Location*c.Location +
		w.Salary*c.Salary
}

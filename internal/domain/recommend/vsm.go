package recommend

import (
	"math"
	"strings"
)

// vectorSpace holds TF-IDF vectors for one corpus. It is rebuilt from
// scratch for every ranking call so concurrent requests never share state.
type vectorSpace struct {
	vectors []map[string]float64
	norms   []float64
}

// newVectorSpace computes TF-IDF weights over already-normalized documents.
// tf is the raw term count within a document; idf(t) = 1 + ln(N / (1 + df(t)))
// across the whole corpus.
func newVectorSpace(docs []string) *vectorSpace {
	counts := make([]map[string]float64, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tf := make(map[string]float64)
		for _, term := range strings.Fields(doc) {
			tf[term]++
		}
		counts[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	n := float64(len(docs))
	vs := &vectorSpace{
		vectors: make([]map[string]float64, len(docs)),
		norms:   make([]float64, len(docs)),
	}

	for i, tf := range counts {
		vec := make(map[string]float64, len(tf))
		var sq float64
		for term, count := range tf {
			idf := 1 + math.Log(n/float64(1+df[term]))
			w := count * idf
			vec[term] = w
			sq += w * w
		}
		vs.vectors[i] = vec
		vs.norms[i] = math.Sqrt(sq)
	}

	return vs
}

// cosine returns the cosine similarity of documents i and j. A zero norm
// on either side yields 0 rather than NaN.
func (vs *vectorSpace) cosine(i, j int) float64 {
	ni, nj := vs.norms[i], vs.norms[j]
	if ni == 0 || nj == 0 {
		return 0
	}

	a, b := vs.vectors[i], vs.vectors[j]
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for term, w := range a {
		if wb, ok := b[term]; ok {
			dot += w * wb
		}
	}

	return clamp01(dot / (ni * nj))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package recommend

import "testing"

func TestLocationScore(t *testing.T) {
	cases := []struct {
		name     string
		address  string
		location string
		want     float64
	}{
		{"exact case-insensitive", "Mumbai", "mumbai", 1},
		{"substring", "Andheri, Mumbai", "Mumbai", 0.6},
		{"substring reversed", "Mumbai", "Andheri, Mumbai", 0.6},
		{"mismatch", "Delhi", "Mumbai", 0},
		{"missing address", "", "Mumbai", 0.5},
		{"missing location", "Mumbai", "", 0.5},
		{"whitespace only", "   ", "Mumbai", 0.5},
	}
	for _, c := range cases {
		if got := locationScore(c.address, c.location); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

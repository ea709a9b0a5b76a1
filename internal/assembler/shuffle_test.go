package assembler

import (
	"fmt"
	"math"
	"testing"
)

func TestShuffleKeepsInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := Shuffle(testRand(1), in)
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i, v := range []int{1, 2, 3, 4, 5} {
		if in[i] != v {
			t.Fatalf("input modified: %v", in)
		}
	}
	seen := make(map[int]bool)
	for _, v := range out {
		seen[v] = true
	}
	if len(seen) != len(in) {
		t.Errorf("output %v is not a permutation of %v", out, in)
	}
}

func TestShuffleEmpty(t *testing.T) {
	if got := Shuffle(testRand(1), []string(nil)); len(got) != 0 {
		t.Errorf("Shuffle(nil) = %v", got)
	}
}

func TestShufflePositionUniformity(t *testing.T) {
	const (
		n      = 5
		trials = 50000
	)
	rng := testRand(42)
	in := []int{0, 1, 2, 3, 4}
	var counts [n][n]int
	for i := 0; i < trials; i++ {
		for pos, v := range Shuffle(rng, in) {
			counts[v][pos]++
		}
	}

	// Chi-square over each element's position histogram. With 4 degrees of
	// freedom the 99.9% critical value is 18.47.
	expected := float64(trials) / n
	for v := 0; v < n; v++ {
		chi := 0.0
		for pos := 0; pos < n; pos++ {
			d := float64(counts[v][pos]) - expected
			chi += d * d / expected
		}
		if chi > 18.47 {
			t.Errorf("element %d positions %v: chi-square %.2f exceeds 18.47", v, counts[v], chi)
		}
	}
}

func TestShuffleReachesEveryPermutation(t *testing.T) {
	const trials = 60000
	rng := testRand(7)
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle(rng, []int{1, 2, 3}))]++
	}
	if len(counts) != 6 {
		t.Fatalf("reached %d permutations, want 6", len(counts))
	}
	expected := float64(trials) / 6
	for perm, c := range counts {
		if math.Abs(float64(c)-expected)/expected > 0.05 {
			t.Errorf("permutation %s seen %d times, expected about %.0f", perm, c, expected)
		}
	}
}

package fss

import (
	"math/rand"
	"testing"
)

func TestNEH(t *testing.T) {
	inst := twoJobInstance()
	perm, ms := NEH(inst)
	if err := ValidatePermutation(perm, inst.Jobs); err != nil {
		t.Fatalf("NEH permutation invalid: %s", err)
	}
	if ms != 7 {
		t.Fatalf("NEH makespan = %d, want 7", ms)
	}

	larger := &Instance{
		Jobs:     4,
		Machines: 3,
		ProcessingTimes: [][]int{
			{5, 1, 3},
			{2, 4, 2},
			{3, 3, 3},
			{1, 5, 1},
		},
	}
	perm, ms = NEH(larger)
	if err := ValidatePermutation(perm, larger.Jobs); err != nil {
		t.Fatalf("NEH permutation invalid: %s", err)
	}
	check, err := Makespan(larger, perm)
	if err != nil {
		t.Fatal(err)
	}
	if check != ms {
		t.Fatalf("NEH reports makespan %d but its permutation evaluates to %d", ms, check)
	}
}

func TestGreedyMakespan(t *testing.T) {
	inst := twoJobInstance()
	rng := rand.New(rand.NewSource(1))
	if ms := GreedyMakespan(inst, 50, rng); ms != 7 {
		t.Fatalf("greedy makespan = %d, want 7", ms)
	}
}

func TestHorizon(t *testing.T) {
	inst := twoJobInstance()
	rng := rand.New(rand.NewSource(1))
	if h := Horizon(inst, 25, 10, rng); h != 25 {
		t.Fatalf("manual horizon = %d, want 25", h)
	}
	// ceil(1.4 * 7)
	if h := Horizon(inst, 0, 10, rng); h != 10 {
		t.Fatalf("derived horizon = %d, want 10", h)
	}
}

package fss

import (
	"math"
	"math/rand"

	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// GreedyMultiplier stretches the heuristic makespan into the scheduling
// horizon used as upper bound and big-M value.
const GreedyMultiplier = 1.4

// NEH builds a schedule by inserting jobs in order of decreasing total
// processing time, each at the position that keeps the partial makespan
// smallest. Returns the permutation and its makespan.
func NEH(inst *Instance) ([]int, int) {
	pq := priorityqueue.New[int, float64](priorityqueue.MaxHeap)
	for j := 0; j < inst.Jobs; j++ {
		pq.Put(j, float64(inst.TotalJobTime(j)))
	}

	seq := make([]int, 0, inst.Jobs)
	for pq.Len() > 0 {
		job := pq.Get().Value
		bestPos := 0
		bestMakespan := math.MaxInt
		cand := make([]int, len(seq)+1)
		for pos := 0; pos <= len(seq); pos++ {
			copy(cand, seq[:pos])
			cand[pos] = job
			copy(cand[pos+1:], seq[pos:])
			ms := partialMakespan(inst, cand)
			if ms < bestMakespan {
				bestMakespan = ms
				bestPos = pos
			}
		}
		seq = append(seq, 0)
		copy(seq[bestPos+1:], seq[bestPos:])
		seq[bestPos] = job
	}
	return seq, partialMakespan(inst, seq)
}

// GreedyMakespan samples random permutations and returns the best makespan
// found, never worse than the NEH construction.
func GreedyMakespan(inst *Instance, samples int, rng *rand.Rand) int {
	_, best := NEH(inst)
	perm := make([]int, inst.Jobs)
	for i := range perm {
		perm[i] = i
	}
	for s := 0; s < samples; s++ {
		rng.Shuffle(len(perm), func(a, b int) {
			perm[a], perm[b] = perm[b], perm[a]
		})
		if ms := partialMakespan(inst, perm); ms < best {
			best = ms
		}
	}
	return best
}

// Horizon picks the scheduling horizon: a manual bound wins, otherwise the
// stretched greedy makespan.
func Horizon(inst *Instance, manual, samples int, rng *rand.Rand) int {
	if manual > 0 {
		return manual
	}
	greedy := GreedyMakespan(inst, samples, rng)
	return int(math.Ceil(GreedyMultiplier * float64(greedy)))
}

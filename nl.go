package fss

import (
	"math"
	"math/rand"
	"time"
)

// Annealing schedule of the permutation-model sampler.
const (
	nlInitialTemp = 2000.0
	nlFinalTemp   = 0.5
	nlAlpha       = 0.995
)

// SolvePermutation solves the permutation model: the only decision variable
// is the job order, feasibility is implicit and no constraints are needed.
// The sampler starts from the NEH construction and anneals with swap and
// insert moves until the time limit runs out.
func SolvePermutation(inst *Instance, timeLimit int, seed int64) (perm []int, makespan int, err error) {
	if err := inst.Validate(); err != nil {
		return nil, -1, err
	}
	rng := rand.New(rand.NewSource(seed))
	deadline := time.Now().Add(time.Duration(timeLimit) * time.Second)

	best, bestCost := NEH(inst)
	n := inst.Jobs
	if n < 2 {
		return best, bestCost, nil
	}

	curr := make([]int, n)
	copy(curr, best)
	currCost := bestCost
	cand := make([]int, n)

	T := nlInitialTemp
	for iter := 0; ; iter++ {
		if iter%128 == 0 && !time.Now().Before(deadline) {
			break
		}
		if T < nlFinalTemp {
			// reheat and keep sampling until the time limit
			T = nlInitialTemp
		}

		copy(cand, curr)
		if rng.Intn(2) == 0 {
			neighborSwap(cand, rng)
		} else {
			neighborInsert(cand, rng)
		}
		candCost := partialMakespan(inst, cand)

		delta := candCost - currCost
		accept := delta <= 0
		if !accept {
			accept = rng.Float64() < math.Exp(-float64(delta)/T)
		}
		if accept {
			curr, cand = cand, curr
			currCost = candCost
			if currCost < bestCost {
				bestCost = currCost
				copy(best, curr)
			}
		}
		T *= nlAlpha
	}
	return best, bestCost, nil
}

// neighborSwap exchanges two distinct random positions.
func neighborSwap(p []int, rng *rand.Rand) {
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	p[i], p[j] = p[j], p[i]
}

// neighborInsert removes the element at one position and reinserts it at
// another.
func neighborInsert(p []int, rng *rand.Rand) {
	i := rng.Intn(len(p))
	j := rng.Intn(len(p) - 1)
	if j >= i {
		j++
	}
	val := p[i]
	if i < j {
		copy(p[i:j], p[i+1:j+1])
	} else {
		copy(p[j+1:i+1], p[j:i])
	}
	p[j] = val
}

package fss

import (
	"errors"
	"fmt"
	"sort"
)

// Duration returns the processing time of a job on a machine.
func (inst *Instance) Duration(job, machine int) int {
	return inst.ProcessingTimes[job][machine]
}

// TotalJobTime returns the time needed to run a job over all machines.
func (inst *Instance) TotalJobTime(job int) int {
	sum := 0
	for m := 0; m < inst.Machines; m++ {
		sum += inst.ProcessingTimes[job][m]
	}
	return sum
}

// MaxHorizon is the sum of all processing times. Every feasible schedule
// finishes within it.
func (inst *Instance) MaxHorizon() int {
	sum := 0
	for j := 0; j < inst.Jobs; j++ {
		sum += inst.TotalJobTime(j)
	}
	return sum
}

func (inst *Instance) Validate() error {
	if inst.Jobs <= 0 {
		return fmt.Errorf("jobs must be > 0 (got %d)", inst.Jobs)
	}
	if inst.Machines <= 0 {
		return fmt.Errorf("machines must be > 0 (got %d)", inst.Machines)
	}
	if len(inst.ProcessingTimes) != inst.Jobs {
		return fmt.Errorf("processing_times must have %d rows (got %d)", inst.Jobs, len(inst.ProcessingTimes))
	}
	for j, row := range inst.ProcessingTimes {
		if len(row) != inst.Machines {
			return fmt.Errorf("processing_times row %d must have %d entries (got %d)", j, inst.Machines, len(row))
		}
		for m, d := range row {
			if d < 0 {
				return fmt.Errorf("processing_times[%d][%d] must be >= 0 (got %d)", j, m, d)
			}
		}
	}
	return nil
}

func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("permutation length must be %d (got %d)", n, len(perm))
	}
	seen := make([]bool, n)
	for i, v := range perm {
		if v < 0 || v >= n {
			return fmt.Errorf("perm[%d]=%d out of range [0,%d)", i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("job %d appears twice in the permutation", v)
		}
		seen[v] = true
	}
	return nil
}

// Makespan runs the machine-completion sweep for a full job permutation.
func Makespan(inst *Instance, perm []int) (int, error) {
	if err := ValidatePermutation(perm, inst.Jobs); err != nil {
		return -1, err
	}
	return partialMakespan(inst, perm), nil
}

// partialMakespan sweeps any (possibly incomplete) job sequence.
func partialMakespan(inst *Instance, seq []int) int {
	completion := make([]int, inst.Machines)
	for _, job := range seq {
		completion[0] += inst.Duration(job, 0)
		for m := 1; m < inst.Machines; m++ {
			if completion[m-1] > completion[m] {
				completion[m] = completion[m-1]
			}
			completion[m] += inst.Duration(job, m)
		}
	}
	return completion[inst.Machines-1]
}

// ScheduleFromPermutation computes the start time of every job on every
// machine when the jobs run in the given order on all machines.
func ScheduleFromPermutation(inst *Instance, perm []int) ([][]int, error) {
	if err := ValidatePermutation(perm, inst.Jobs); err != nil {
		return nil, err
	}
	starts := make([][]int, inst.Jobs)
	for j := 0; j < inst.Jobs; j++ {
		starts[j] = make([]int, inst.Machines)
	}
	completion := make([]int, inst.Machines)
	for _, job := range perm {
		starts[job][0] = completion[0]
		completion[0] += inst.Duration(job, 0)
		for m := 1; m < inst.Machines; m++ {
			start := completion[m]
			if completion[m-1] > start {
				start = completion[m-1]
			}
			starts[job][m] = start
			completion[m] = start + inst.Duration(job, m)
		}
	}
	return starts, nil
}

// CheckSchedule verifies that a solution is a feasible flow-shop schedule:
// every job runs through machines 0..m-1 in order, no two jobs overlap on a
// machine and the reported makespan matches the last completion.
func CheckSchedule(inst *Instance, sol *Solution) error {
	if sol == nil || sol.StartTimes == nil {
		return errors.New("no schedule to check")
	}
	if len(sol.StartTimes) != inst.Jobs {
		return fmt.Errorf("start_times must have %d rows (got %d)", inst.Jobs, len(sol.StartTimes))
	}
	lastCompletion := 0
	for j := 0; j < inst.Jobs; j++ {
		if len(sol.StartTimes[j]) != inst.Machines {
			return fmt.Errorf("start_times row %d must have %d entries (got %d)", j, inst.Machines, len(sol.StartTimes[j]))
		}
		if sol.StartTimes[j][0] < 0 {
			return fmt.Errorf("job %d starts at %d on machine 0", j, sol.StartTimes[j][0])
		}
		for m := 1; m < inst.Machines; m++ {
			prevEnd := sol.StartTimes[j][m-1] + inst.Duration(j, m-1)
			if sol.StartTimes[j][m] < prevEnd {
				return fmt.Errorf("job %d starts on machine %d at %d before finishing machine %d at %d", j, m, sol.StartTimes[j][m], m-1, prevEnd)
			}
		}
		end := sol.StartTimes[j][inst.Machines-1] + inst.Duration(j, inst.Machines-1)
		if end > lastCompletion {
			lastCompletion = end
		}
	}
	for m := 0; m < inst.Machines; m++ {
		order := make([]int, inst.Jobs)
		for j := range order {
			order[j] = j
		}
		sort.Slice(order, func(a, b int) bool {
			return sol.StartTimes[order[a]][m] < sol.StartTimes[order[b]][m]
		})
		for i := 1; i < len(order); i++ {
			prev, curr := order[i-1], order[i]
			prevEnd := sol.StartTimes[prev][m] + inst.Duration(prev, m)
			if sol.StartTimes[curr][m] < prevEnd {
				return fmt.Errorf("jobs %d and %d overlap on machine %d", prev, curr, m)
			}
		}
	}
	if sol.Makespan != lastCompletion {
		return fmt.Errorf("solution claims makespan %d but the schedule finishes at %d", sol.Makespan, lastCompletion)
	}
	return nil
}

// TaskTimeBounds returns the earliest and latest possible start of a task,
// given that the prior tasks of its job must run before it and the
// subsequent ones after it, all within the horizon.
func TaskTimeBounds(inst *Instance, job, machine, horizon int) (int, int) {
	prior := 0
	for m := 0; m < machine; m++ {
		prior += inst.Duration(job, m)
	}
	subsequent := 0
	for m := machine + 1; m < inst.Machines; m++ {
		subsequent += inst.Duration(job, m)
	}
	return prior, horizon - subsequent - inst.Duration(job, machine)
}

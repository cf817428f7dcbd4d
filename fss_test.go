package fss

import (
	"testing"
)

func twoJobInstance() *Instance {
	return &Instance{
		Name:     "toy",
		Type:     "FSS",
		Jobs:     2,
		Machines: 2,
		ProcessingTimes: [][]int{
			{3, 2},
			{1, 4},
		},
	}
}

func TestValidate(t *testing.T) {
	inst := twoJobInstance()
	if err := inst.Validate(); err != nil {
		t.Fatalf("valid instance rejected: %s", err)
	}

	bad := twoJobInstance()
	bad.ProcessingTimes[1][0] = -1
	if err := bad.Validate(); err == nil {
		t.Fatal("negative duration accepted")
	}

	ragged := twoJobInstance()
	ragged.ProcessingTimes[0] = []int{3}
	if err := ragged.Validate(); err == nil {
		t.Fatal("ragged matrix accepted")
	}

	short := twoJobInstance()
	short.Jobs = 3
	if err := short.Validate(); err == nil {
		t.Fatal("wrong row count accepted")
	}
}

func TestValidatePermutation(t *testing.T) {
	if err := ValidatePermutation([]int{1, 0}, 2); err != nil {
		t.Fatalf("valid permutation rejected: %s", err)
	}
	if err := ValidatePermutation([]int{0}, 2); err == nil {
		t.Fatal("short permutation accepted")
	}
	if err := ValidatePermutation([]int{0, 0}, 2); err == nil {
		t.Fatal("duplicate job accepted")
	}
	if err := ValidatePermutation([]int{0, 2}, 2); err == nil {
		t.Fatal("out-of-range job accepted")
	}
}

func TestMakespan(t *testing.T) {
	inst := twoJobInstance()

	ms, err := Makespan(inst, []int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if ms != 9 {
		t.Fatalf("makespan of [0 1] = %d, want 9", ms)
	}

	ms, err = Makespan(inst, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if ms != 7 {
		t.Fatalf("makespan of [1 0] = %d, want 7", ms)
	}

	if _, err = Makespan(inst, []int{0, 0}); err == nil {
		t.Fatal("invalid permutation accepted")
	}
}

func TestScheduleFromPermutation(t *testing.T) {
	inst := twoJobInstance()
	starts, err := ScheduleFromPermutation(inst, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{
		{1, 5},
		{0, 1},
	}
	for j := range want {
		for m := range want[j] {
			if starts[j][m] != want[j][m] {
				t.Fatalf("starts[%d][%d] = %d, want %d", j, m, starts[j][m], want[j][m])
			}
		}
	}
}

func TestCheckSchedule(t *testing.T) {
	inst := twoJobInstance()
	starts, err := ScheduleFromPermutation(inst, []int{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	sol := &Solution{Makespan: 7, StartTimes: starts}
	if err := CheckSchedule(inst, sol); err != nil {
		t.Fatalf("feasible schedule rejected: %s", err)
	}

	sol.Makespan = 8
	if err := CheckSchedule(inst, sol); err == nil {
		t.Fatal("wrong makespan accepted")
	}
	sol.Makespan = 7

	overlap := &Solution{Makespan: 7, StartTimes: [][]int{{1, 4}, {0, 1}}}
	if err := CheckSchedule(inst, overlap); err == nil {
		t.Fatal("overlapping schedule accepted")
	}

	precedence := &Solution{Makespan: 7, StartTimes: [][]int{{1, 2}, {0, 5}}}
	if err := CheckSchedule(inst, precedence); err == nil {
		t.Fatal("schedule breaking the machine order accepted")
	}

	if err := CheckSchedule(inst, &Solution{}); err == nil {
		t.Fatal("empty solution accepted")
	}
}

func TestTaskTimeBounds(t *testing.T) {
	inst := twoJobInstance()
	cases := []struct {
		job, machine, lb, ub int
	}{
		{0, 0, 0, 15},
		{0, 1, 3, 18},
		{1, 0, 0, 15},
		{1, 1, 1, 16},
	}
	for _, c := range cases {
		lb, ub := TaskTimeBounds(inst, c.job, c.machine, 20)
		if lb != c.lb || ub != c.ub {
			t.Fatalf("bounds of task (%d,%d) = [%d,%d], want [%d,%d]", c.job, c.machine, lb, ub, c.lb, c.ub)
		}
	}
}

func TestMaxHorizon(t *testing.T) {
	inst := twoJobInstance()
	if h := inst.MaxHorizon(); h != 10 {
		t.Fatalf("max horizon = %d, want 10", h)
	}
}

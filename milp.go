package fss

import (
	"fmt"
	"math"

	"github.com/lanl/highs"
)

// Column layout of the MILP: the n*m start times first, then the pairwise
// order binaries (pair-major, machine-minor), the makespan column last.

func milpXCol(inst *Instance, job, machine int) int {
	return job*inst.Machines + machine
}

func milpYCol(inst *Instance, j, k, machine int) int {
	return inst.Jobs*inst.Machines + GetPairIndex(j, k, inst.Jobs)*inst.Machines + machine
}

func milpCmaxCol(inst *Instance) int {
	return inst.Jobs*inst.Machines + inst.Jobs*(inst.Jobs-1)/2*inst.Machines
}

// BuildMILP assembles the disjunctive flow-shop formulation as a sparse
// HiGHS model. Construction is pure; nothing touches the solver library
// until Solve is called on the result.
func BuildMILP(inst *Instance, horizon int) *highs.Model {
	n := inst.Jobs
	m := inst.Machines
	V := float64(horizon)
	numCols := milpCmaxCol(inst) + 1

	lp := new(highs.Model)
	lp.VarTypes = make([]highs.VariableType, numCols)
	lp.ColCosts = make([]float64, numCols)
	lp.ColLower = make([]float64, numCols)
	lp.ColUpper = make([]float64, numCols)
	for c := range lp.VarTypes {
		lp.VarTypes[c] = highs.IntegerType
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			xlb, xub := TaskTimeBounds(inst, j, i, horizon)
			lp.ColLower[milpXCol(inst, j, i)] = float64(xlb)
			lp.ColUpper[milpXCol(inst, j, i)] = float64(xub)
		}
	}
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for i := 0; i < m; i++ {
				lp.ColUpper[milpYCol(inst, j, k, i)] = 1
			}
		}
	}
	lp.ColUpper[milpCmaxCol(inst)] = V
	lp.ColCosts[milpCmaxCol(inst)] = 1

	row := 0
	addRow := func(lower float64, nz ...highs.Nonzero) {
		lp.ConstMatrix = append(lp.ConstMatrix, nz...)
		lp.RowLower = append(lp.RowLower, lower)
		lp.RowUpper = append(lp.RowUpper, math.Inf(1))
		row++
	}

	for j := 0; j < n; j++ {
		for i := 1; i < m; i++ {
			addRow(float64(inst.Duration(j, i-1)),
				highs.Nonzero{Row: row, Col: milpXCol(inst, j, i), Val: 1},
				highs.Nonzero{Row: row, Col: milpXCol(inst, j, i-1), Val: -1},
			)
		}
	}
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for i := 0; i < m; i++ {
				addRow(float64(inst.Duration(k, i)),
					highs.Nonzero{Row: row, Col: milpXCol(inst, j, i), Val: 1},
					highs.Nonzero{Row: row, Col: milpXCol(inst, k, i), Val: -1},
					highs.Nonzero{Row: row, Col: milpYCol(inst, j, k, i), Val: V},
				)
				addRow(float64(inst.Duration(j, i))-V,
					highs.Nonzero{Row: row, Col: milpXCol(inst, k, i), Val: 1},
					highs.Nonzero{Row: row, Col: milpXCol(inst, j, i), Val: -1},
					highs.Nonzero{Row: row, Col: milpYCol(inst, j, k, i), Val: -V},
				)
			}
		}
	}
	for j := 0; j < n; j++ {
		addRow(float64(inst.Duration(j, m-1)),
			highs.Nonzero{Row: row, Col: milpCmaxCol(inst), Val: 1},
			highs.Nonzero{Row: row, Col: milpXCol(inst, j, m-1), Val: -1},
		)
	}
	return lp
}

// SolveMILP submits the MILP to HiGHS and extracts the schedule.
func SolveMILP(inst *Instance, horizon int) (starts [][]int, makespan int, err error) {
	lp := BuildMILP(inst, horizon)
	solution, err := lp.Solve()
	if err != nil {
		return nil, -1, err
	}
	if solution.Status != highs.Optimal {
		return nil, -1, fmt.Errorf("status: %v", solution.Status.String())
	}

	starts = make([][]int, inst.Jobs)
	for j := 0; j < inst.Jobs; j++ {
		starts[j] = make([]int, inst.Machines)
		for i := 0; i < inst.Machines; i++ {
			starts[j][i] = int(solution.ColumnPrimal[milpXCol(inst, j, i)] + 0.5)
		}
	}
	makespan = int(solution.Objective + 0.5)
	return starts, makespan, nil
}

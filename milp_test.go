package fss

import (
	"math"
	"testing"

	"github.com/lanl/highs"
)

func TestBuildMILPColumns(t *testing.T) {
	inst := twoJobInstance()
	lp := BuildMILP(inst, 20)

	// 4 start times, 2 order binaries, the makespan
	if len(lp.VarTypes) != 7 {
		t.Fatalf("model has %d columns, want 7", len(lp.VarTypes))
	}
	for c, vt := range lp.VarTypes {
		if vt != highs.IntegerType {
			t.Fatalf("column %d is not integer", c)
		}
	}
	for c, cost := range lp.ColCosts {
		want := 0.0
		if c == milpCmaxCol(inst) {
			want = 1.0
		}
		if cost != want {
			t.Fatalf("objective coefficient of column %d = %f, want %f", c, cost, want)
		}
	}

	bounds := []struct {
		col    int
		lb, ub float64
	}{
		{milpXCol(inst, 0, 0), 0, 15},
		{milpXCol(inst, 0, 1), 3, 18},
		{milpXCol(inst, 1, 0), 0, 15},
		{milpXCol(inst, 1, 1), 1, 16},
		{milpYCol(inst, 0, 1, 0), 0, 1},
		{milpYCol(inst, 0, 1, 1), 0, 1},
		{milpCmaxCol(inst), 0, 20},
	}
	for _, b := range bounds {
		if lp.ColLower[b.col] != b.lb || lp.ColUpper[b.col] != b.ub {
			t.Fatalf("column %d bounds = [%f,%f], want [%f,%f]", b.col, lp.ColLower[b.col], lp.ColUpper[b.col], b.lb, b.ub)
		}
	}
}

func TestBuildMILPRows(t *testing.T) {
	inst := twoJobInstance()
	lp := BuildMILP(inst, 20)

	// 2 precedence, 4 disjunctive, 2 makespan rows
	if len(lp.RowLower) != 8 || len(lp.RowUpper) != 8 {
		t.Fatalf("model has %d rows, want 8", len(lp.RowLower))
	}
	for r, ub := range lp.RowUpper {
		if !math.IsInf(ub, 1) {
			t.Fatalf("row %d upper bound = %f, want +inf", r, ub)
		}
	}
	if len(lp.ConstMatrix) != 20 {
		t.Fatalf("model has %d nonzeros, want 20", len(lp.ConstMatrix))
	}

	// first precedence row: x_0_1 - x_0_0 >= d[0][0]
	if lp.RowLower[0] != 3 {
		t.Fatalf("first precedence bound = %f, want 3", lp.RowLower[0])
	}
	if lp.ConstMatrix[0].Col != milpXCol(inst, 0, 1) || lp.ConstMatrix[0].Val != 1 {
		t.Fatalf("unexpected first nonzero: %+v", lp.ConstMatrix[0])
	}
	if lp.ConstMatrix[1].Col != milpXCol(inst, 0, 0) || lp.ConstMatrix[1].Val != -1 {
		t.Fatalf("unexpected second nonzero: %+v", lp.ConstMatrix[1])
	}

	// every ordered pair gets exactly two big-M rows per machine, with
	// opposite signs on the shared order binary
	yCoeffs := make(map[int][]float64)
	for _, nz := range lp.ConstMatrix {
		if nz.Col >= inst.Jobs*inst.Machines && nz.Col < milpCmaxCol(inst) {
			yCoeffs[nz.Col] = append(yCoeffs[nz.Col], nz.Val)
		}
	}
	for col, coeffs := range yCoeffs {
		if len(coeffs) != 2 {
			t.Fatalf("order binary %d appears in %d rows, want 2", col, len(coeffs))
		}
		if coeffs[0]+coeffs[1] != 0 {
			t.Fatalf("order binary %d coefficients %v do not cancel", col, coeffs)
		}
	}
}

func TestBuildMILPRowIndices(t *testing.T) {
	inst := twoJobInstance()
	lp := BuildMILP(inst, 20)
	maxRow := 0
	for _, nz := range lp.ConstMatrix {
		if nz.Row > maxRow {
			maxRow = nz.Row
		}
	}
	if maxRow != len(lp.RowLower)-1 {
		t.Fatalf("highest row index %d does not match %d bounded rows", maxRow, len(lp.RowLower))
	}
}

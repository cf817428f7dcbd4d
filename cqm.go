/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package fss

import (
	"fmt"
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"log"
)

// SolveCQM builds the constrained disjunctive model and submits it to
// Gurobi. Variables are the integer start times X_j_i (bounded by each
// task's time window within the horizon), the binary order variables
// Y_j_k_i for j < k (1 iff job j precedes job k on machine i) and the
// integer makespan Cmax, which is minimized. The horizon doubles as the
// big-M value of the disjunctive pairs.
func SolveCQM(inst *Instance, timeLimit, horizon int) (starts [][]int, makespan int, lb int, optimstatus int32, err error) {
	// Create environment
	env, err := gurobi.LoadEnv("fss-cqm.log")
	if err != nil {
		log.Printf("Error: %s\n", err.Error())
		return nil, -1, -1, -1, err
	}
	defer env.Free()
	env.SetIntParam("LogToConsole", int32(0))
	defer env.SetIntParam("LogToConsole", int32(1))

	n := inst.Jobs
	m := inst.Machines
	V := float64(horizon)

	/* Create an empty model */

	model, err := env.NewModel("fss", 0, nil, nil, nil, nil, nil)
	if err != nil {
		log.Println(err)
		return nil, -1, -1, -1, err
	}
	defer model.Free()

	if timeLimit > 0 {
		err = model.SetDblParam(gurobi.DBL_PAR_TIMELIMIT, float64(timeLimit))
		if err != nil {
			log.Println(err)
			return nil, -1, -1, -1, err
		}
	}

	/* Add variables X_j_i - start time of job j on machine i */
	startX := 0
	varCount := 0
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			name := fmt.Sprintf("X_%d_%d", j, i)
			xlb, xub := TaskTimeBounds(inst, j, i, horizon)
			err = model.AddVar(nil, nil, 0.0, float64(xlb), float64(xub), gurobi.INTEGER, name)
			if err != nil {
				log.Println(err)
				return nil, -1, -1, -1, err
			}
			varCount++
		}
	}

	/* Add variables Y_j_k_i - one for every pair of jobs where k > j, per machine */
	startY := varCount
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for i := 0; i < m; i++ {
				name := fmt.Sprintf("Y_%d_%d_%d", j, k, i)
				err = model.AddVar(nil, nil, 0.0, 0.0, 1.0, gurobi.BINARY, name)
				if err != nil {
					log.Println(err)
					return nil, -1, -1, -1, err
				}
				varCount++
			}
		}
	}

	/* Add the makespan variable */
	cmax := varCount
	err = model.AddVar(nil, nil, 1.0, 0.0, V, gurobi.INTEGER, "Cmax")
	if err != nil {
		log.Println(err)
		return nil, -1, -1, -1, err
	}
	varCount++

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		log.Printf("Error: %s\n", err.Error())
		return nil, -1, -1, -1, err
	}

	xInd := func(j, i int) int32 {
		return int32(startX + j*m + i)
	}
	yInd := func(j, k, i int) int32 {
		return int32(startY + GetPairIndex(j, k, n)*m + i)
	}

	//Precedence: a job may only enter a machine after leaving the previous one
	for j := 0; j < n; j++ {
		for i := 1; i < m; i++ {
			ind := []int32{xInd(j, i), xInd(j, i-1)}
			val := []float64{1.0, -1.0}
			name := fmt.Sprintf("prec_%d_%d", j, i)
			err = model.AddConstr(ind, val, gurobi.GREATER_EQUAL, float64(inst.Duration(j, i-1)), name)
			if err != nil {
				log.Printf("Error adding %s\n", name)
				return nil, -1, -1, -1, err
			}
		}
	}

	//Disjunction: of every pair of jobs, one runs first on each machine
	for j := 0; j < n; j++ {
		for k := j + 1; k < n; k++ {
			for i := 0; i < m; i++ {
				ind := []int32{xInd(j, i), xInd(k, i), yInd(j, k, i)}
				val := []float64{1.0, -1.0, V}
				name := fmt.Sprintf("disj1_%d_%d_%d", j, k, i)
				err = model.AddConstr(ind, val, gurobi.GREATER_EQUAL, float64(inst.Duration(k, i)), name)
				if err != nil {
					log.Printf("Error adding %s\n", name)
					return nil, -1, -1, -1, err
				}

				ind = []int32{xInd(k, i), xInd(j, i), yInd(j, k, i)}
				val = []float64{1.0, -1.0, -V}
				name = fmt.Sprintf("disj2_%d_%d_%d", j, k, i)
				err = model.AddConstr(ind, val, gurobi.GREATER_EQUAL, float64(inst.Duration(j, i))-V, name)
				if err != nil {
					log.Printf("Error adding %s\n", name)
					return nil, -1, -1, -1, err
				}
			}
		}
	}

	//Makespan: no job may finish its last machine after Cmax
	for j := 0; j < n; j++ {
		ind := []int32{int32(cmax), xInd(j, m-1)}
		val := []float64{1.0, -1.0}
		name := fmt.Sprintf("makespan_%d", j)
		err = model.AddConstr(ind, val, gurobi.GREATER_EQUAL, float64(inst.Duration(j, m-1)), name)
		if err != nil {
			log.Printf("Error adding %s\n", name)
			return nil, -1, -1, -1, err
		}
	}

	// Optimize model
	err = model.Optimize()
	if err != nil {
		log.Printf("Error: %s\n", err.Error())
		return nil, -1, -1, -1, err
	}

	// Capture solution information
	optimstatus, err = model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		log.Printf("Error capturing solution: %s\n", err.Error())
		return nil, -1, -1, -1, err
	}
	if optimstatus == gurobi.INFEASIBLE || optimstatus == gurobi.INF_OR_UNBD {
		return nil, -1, -1, optimstatus, fmt.Errorf("model is infeasible within horizon %d", horizon)
	}

	objval, err := model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		log.Printf("Couldn't retrieve the obj-value: %s.\n", err.Error())
		return nil, -1, -1, optimstatus, err
	}
	makespan = int(objval + 0.5)

	lbF, err := model.GetDblAttr(gurobi.DBL_ATTR_OBJBOUND)
	if err != nil {
		log.Printf("Couldn't retrieve the lower-bound-value: %s.\n", err.Error())
		return nil, -1, -1, optimstatus, err
	}
	lb = int(lbF + 0.5)

	solA, err := model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(varCount))
	if err != nil {
		log.Println(err)
		return nil, -1, -1, optimstatus, err
	}
	starts = make([][]int, n)
	for j := 0; j < n; j++ {
		starts[j] = make([]int, m)
		for i := 0; i < m; i++ {
			starts[j][i] = int(solA[xInd(j, i)] + 0.5)
		}
	}
	return starts, makespan, lb, optimstatus, nil
}

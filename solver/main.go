/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/fss"
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

const (
	NL   = "NL"
	CQM  = "CQM"
	MILP = "MILP"
)

var (
	models fss.ArrayStringFlags

	inputF      *string
	outputF     *string
	solF        *string
	timeLimit   *int
	maxMakespan *int
	seed        *int64
	verbose     *bool

	pInst *fss.Instance
	sol   fss.Solution
)

func main() {
	flag.Var(&models, "model", "Model to solve: NL, CQM or MILP. May be passed multiple times; the best schedule is kept")
	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	solF = flag.String("solfile", "", "Path for the readable solution table. Not written when empty")
	timeLimit = flag.Int("timelimit", 60, "Solver time limit in seconds")
	maxMakespan = flag.Int("maxmakespan", 0, "Manual bound on the schedule length. 0 derives one from the greedy heuristic")
	seed = flag.Int64("seed", time.Now().UnixNano(), "Seed for the heuristics")
	verbose = flag.Bool("v", false, "Print model information")

	flag.Parse()
	if len(models) == 0 {
		models = fss.ArrayStringFlags{CQM}
	}

	var err error
	pInst, err = fss.ReadInstanceFile(*inputF)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	err = pInst.Validate()
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = fss.Solution{Comment: "", System: fss.SysInfo{hostStat.Platform, cpuStat[0].ModelName, fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}
	pInst.Solution = &sol

	rng := rand.New(rand.NewSource(*seed))
	horizon := fss.Horizon(pInst, *maxMakespan, 100, rng)
	sol.UBound = horizon
	log.Printf("Scheduling horizon for %s: %d\n", pInst.Name, horizon)
	if *verbose {
		fss.PrintModelStats(pInst, horizon)
		fss.Print2DArray(pInst.ProcessingTimes)
	}

	startTime := time.Now()
	defer writeSolution()

	best := -1
	for _, modelName := range models {
		starts, makespan, lb, optimal, perm, err := runModel(modelName, horizon)
		if err != nil {
			log.Printf("%s on %s: %s\n", modelName, pInst.Name, err.Error())
			sol.Comment += fmt.Sprintf("%s failed: %s. ", modelName, err.Error())
			continue
		}
		candidate := fss.Solution{Makespan: makespan, StartTimes: starts}
		err = fss.CheckSchedule(pInst, &candidate)
		if err != nil {
			log.Printf("%s on %s returned an invalid schedule: %s\n", modelName, pInst.Name, err.Error())
			sol.Comment += fmt.Sprintf("%s returned an invalid schedule: %s. ", modelName, err.Error())
			continue
		}
		log.Printf("%s found a schedule with makespan %d (optimal: %t)\n", modelName, makespan, optimal)
		if best < 0 || makespan < best {
			best = makespan
			sol.Makespan = makespan
			sol.LBound = lb
			sol.Optimal = optimal
			sol.Model = modelName
			sol.StartTimes = starts
			sol.Permutation = perm
		}
	}
	sol.Time = time.Since(startTime).String()
	log.Println("\n---OPTIMIZATION DONE---\n\t Generating and writing result now\n")
	if best < 0 {
		log.Printf("No model found a feasible schedule for %s\n", pInst.Name)
		return
	}
	fmt.Printf("Found a schedule for %s with makespan %d using %s\n", pInst.Name, sol.Makespan, sol.Model)
}

func runModel(modelName string, horizon int) (starts [][]int, makespan int, lb int, optimal bool, perm []int, err error) {
	switch modelName {
	case NL:
		perm, makespan, err = fss.SolvePermutation(pInst, *timeLimit, *seed)
		if err != nil {
			return nil, -1, -1, false, nil, err
		}
		starts, err = fss.ScheduleFromPermutation(pInst, perm)
		if err != nil {
			return nil, -1, -1, false, nil, err
		}
		return starts, makespan, 0, false, perm, nil
	case CQM:
		var optimstatus int32
		starts, makespan, lb, optimstatus, err = fss.SolveCQM(pInst, *timeLimit, horizon)
		if err != nil {
			return nil, -1, -1, false, nil, err
		}
		if optimstatus == gurobi.TIME_LIMIT {
			sol.Comment += "Time limit reached. "
		}
		return starts, makespan, lb, optimstatus == gurobi.OPTIMAL, nil, nil
	case MILP:
		starts, makespan, err = fss.SolveMILP(pInst, horizon)
		if err != nil {
			return nil, -1, -1, false, nil, err
		}
		return starts, makespan, makespan, true, nil, nil
	}
	return nil, -1, -1, false, nil, fmt.Errorf("unsupported model: %s", modelName)
}

func writeSolution() {
	fileName := *outputF
	if fileName == "" {
		fileName = *inputF
	}
	err := fss.WriteInstanceFile(pInst, fileName)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
	if *solF != "" && sol.StartTimes != nil {
		err = fss.WriteSolutionFile(pInst, *solF)
		if err != nil {
			log.Printf("At %s: %s\n", *solF, err.Error())
		}
	}
}

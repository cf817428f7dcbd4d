package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/fss"
	"gonum.org/v1/gonum/stat"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := os.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Model,Optimal,Time,Makespan,LBound,Gap,Jobs,Machines,Comment\n")
	var gaps []float64
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst, err := fss.ReadInstanceFile(fileName)
		if err != nil {
			log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
			return
		}
		var sol fss.Solution
		if inst.Solution != nil {
			sol = *inst.Solution
		}
		err = fss.CheckSchedule(inst, &sol)
		if err != nil {
			sol.Comment += fmt.Sprintf("ANALYZER: Error = %s", err.Error())
		}
		gap := 0.0
		if sol.LBound > 0 {
			gap = 100.0 * (float64(sol.Makespan-sol.LBound) / float64(sol.LBound))
			gaps = append(gaps, gap)
		}
		fmt.Printf("%s,%s,%t,%s,%d,%d,%.4f,%d,%d,%s\n", inst.Name, sol.Model, sol.Optimal, sol.Time, sol.Makespan, sol.LBound, gap, inst.Jobs, inst.Machines, sol.Comment)
	}
	if len(gaps) > 0 {
		log.Printf("Gap over %d solved instances: mean %.4f%%, stddev %.4f\n", len(gaps), stat.Mean(gaps, nil), stat.StdDev(gaps, nil))
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/fss"
)

var jobs fss.ArrayIntFlags
var machines fss.ArrayIntFlags

func main() {
	flag.Var(&jobs, "n", "List of job counts")
	flag.Var(&machines, "m", "List of machine counts")
	name := flag.String("name", "zarychta", "Name for the instances")
	count := flag.Int("count", 10, "Number of instances per combination")
	minDur := flag.Int("min", 1, "Minimal processing time")
	maxDur := flag.Int("max", 99, "Maximal processing time")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the generator")
	calcNEH := flag.Bool("neh", true, "Whether to record the NEH reference makespan")

	flag.Parse()
	if len(jobs) == 0 || len(machines) == 0 {
		log.Printf("Pass at least one -n and one -m value!")
		return
	}
	if *minDur < 0 || *maxDur < *minDur {
		log.Printf("Invalid processing time range [%d,%d]!", *minDur, *maxDur)
		return
	}

	rng := rand.New(rand.NewSource(*seed))
	span := *maxDur - *minDur + 1
	for l := 0; l < *count; l++ {
		for i := 0; i < len(jobs); i++ {
			n := jobs[i]
			for j := 0; j < len(machines); j++ {
				m := machines[j]
				times := make([][]int, n)
				for job := 0; job < n; job++ {
					times[job] = make([]int, m)
					for machine := 0; machine < m; machine++ {
						times[job][machine] = *minDur + rng.Intn(span)
					}
				}

				instName := fmt.Sprintf("%s_%dx%d_%d", *name, n, m, l)
				comment := fmt.Sprintf("%s instance Nr. %d with %d jobs and %d machines, processing times in [%d,%d]", *name, l, n, m, *minDur, *maxDur)
				inst := fss.Instance{Name: instName, Comment: comment, Type: "FSS", Jobs: n, Machines: m, ProcessingTimes: times}
				if *calcNEH {
					_, inst.NEHMakespan = fss.NEH(&inst)
				}

				err := fss.WriteInstanceFile(&inst, fmt.Sprintf("%s.json", instName))
				if err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}

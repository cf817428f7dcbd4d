package fss

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// GetPairIndex maps an ordered pair j < k of n jobs onto 0..n*(n-1)/2-1.
func GetPairIndex(j, k, n int) int {
	if k < j {
		j, k = k, j
	}
	count := 0
	for a := 0; a < j; a++ {
		count += n - 1 - a
	}
	count += k - j - 1
	return count
}

func Print2DArray(a [][]int) {
	for _, x := range a {
		for _, y := range x {
			fmt.Printf("%d,", y)
		}
		fmt.Println("")
	}
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([0-9]+),\s+([0-9]+)(,)?`)
	var brackets = regexp.MustCompile(`\[(([0-9]+,)+[0-9]+)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$2$3")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$3$4")
	}
	return res
}

func ReadInstanceFile(fileName string) (*Instance, error) {
	instStr, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	inst := &Instance{}
	err = json.Unmarshal(instStr, inst)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func WriteInstanceFile(inst *Instance, fileName string) error {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		return err
	}
	jsonInst = []byte(SanitizeJsonArrayLineBreaks(string(jsonInst)))
	return os.WriteFile(fileName, jsonInst, 0644)
}

// WriteSolutionFile writes the schedule as a readable table: one row per
// job, start and end time for every machine.
func WriteSolutionFile(inst *Instance, fileName string) error {
	sol := inst.Solution
	if sol == nil || sol.StartTimes == nil {
		return fmt.Errorf("instance %s has no schedule", inst.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#Number of jobs: %d\n", inst.Jobs)
	fmt.Fprintf(&b, "#Number of machines: %d\n", inst.Machines)
	fmt.Fprintf(&b, "#Completion time: %d\n\n", sol.Makespan)

	fmt.Fprintf(&b, "%8s", "job")
	for i := 0; i < inst.Machines; i++ {
		fmt.Fprintf(&b, "%18s", fmt.Sprintf("machine %d", i))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%8s", "")
	for i := 0; i < inst.Machines; i++ {
		fmt.Fprintf(&b, "%9s%9s", "start", "end")
	}
	b.WriteString("\n")
	for j := 0; j < inst.Jobs; j++ {
		fmt.Fprintf(&b, "%8d", j)
		for i := 0; i < inst.Machines; i++ {
			start := sol.StartTimes[j][i]
			fmt.Fprintf(&b, "%9d%9d", start, start+inst.Duration(j, i))
		}
		b.WriteString("\n")
	}
	return os.WriteFile(fileName, []byte(b.String()), 0644)
}

// PrintModelStats prints the variable and constraint counts of the
// disjunctive formulation for an instance and horizon.
func PrintModelStats(inst *Instance, horizon int) {
	n := inst.Jobs
	m := inst.Machines
	pairs := n * (n - 1) / 2
	fmt.Printf("=========================MODEL INFORMATION=========================\n")
	fmt.Printf("Jobs: %d, Machines: %d, Horizon: %d\n", n, m, horizon)
	fmt.Printf("Integer variables:     %d\n", n*m+1)
	fmt.Printf("Binary variables:      %d\n", pairs*m)
	fmt.Printf("Precedence constraints: %d\n", n*(m-1))
	fmt.Printf("Disjunctive constraints: %d\n", pairs*m*2)
	fmt.Printf("Makespan constraints:  %d\n", n)
}

package fss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const orlibSeparator = "+++++++++++++++++++++++++++++"

// ParseORLibrary reads the aggregate OR-Library flow-shop file (flowshop1.txt
// and friends). Separator lines alternate between label blocks holding
// "instance <name>" and data blocks holding two header lines, the problem
// size and rows of (machine, duration) pairs. The scan ends at END OF DATA.
func ParseORLibrary(r io.Reader) ([]*Instance, error) {
	var (
		instances     []*Instance
		label         string
		rows          [][]int
		jobs, machines int
		expectLabel   bool
		expectProblem bool
	)

	store := func() error {
		if len(rows) != jobs {
			return fmt.Errorf("instance %s: expected %d job rows, got %d", label, jobs, len(rows))
		}
		inst := &Instance{Name: label, Type: "FSS", Jobs: jobs, Machines: machines, ProcessingTimes: rows}
		if err := inst.Validate(); err != nil {
			return fmt.Errorf("instance %s: %s", label, err.Error())
		}
		instances = append(instances, inst)
		rows = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t := strings.TrimSpace(scanner.Text())
		if t == "" {
			continue
		}
		if strings.Contains(t, "END OF DATA") {
			if err := store(); err != nil {
				return nil, err
			}
			break
		}
		if t == orlibSeparator {
			if expectProblem {
				if err := store(); err != nil {
					return nil, err
				}
			} else if expectLabel {
				// skip the description row, then read the size row
				if !scanner.Scan() {
					return nil, fmt.Errorf("instance %s: unexpected end of file in header", label)
				}
				if !scanner.Scan() {
					return nil, fmt.Errorf("instance %s: unexpected end of file in header", label)
				}
				sizes := strings.Fields(scanner.Text())
				if len(sizes) < 2 {
					return nil, fmt.Errorf("instance %s: malformed size row %q", label, scanner.Text())
				}
				var err error
				jobs, err = strconv.Atoi(sizes[0])
				if err != nil {
					return nil, fmt.Errorf("instance %s: bad job count: %s", label, err.Error())
				}
				machines, err = strconv.Atoi(sizes[1])
				if err != nil {
					return nil, fmt.Errorf("instance %s: bad machine count: %s", label, err.Error())
				}
			}
			expectProblem = expectLabel
			expectLabel = !expectLabel
			continue
		}
		if expectLabel && strings.HasPrefix(t, "instance") {
			label = strings.TrimSpace(strings.TrimPrefix(t, "instance"))
			continue
		}
		if expectProblem {
			fields := strings.Fields(t)
			if len(fields) != 2*machines {
				return nil, fmt.Errorf("instance %s: row %d has %d values, want %d", label, len(rows), len(fields), 2*machines)
			}
			// durations are every second value, the rest are machine indices
			durations := make([]int, machines)
			for i := 0; i < machines; i++ {
				d, err := strconv.Atoi(fields[2*i+1])
				if err != nil {
					return nil, fmt.Errorf("instance %s: bad duration %q: %s", label, fields[2*i+1], err.Error())
				}
				durations[i] = d
			}
			rows = append(rows, durations)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("no instances found")
	}
	return instances, nil
}

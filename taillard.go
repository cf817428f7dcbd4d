package fss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTaillard reads one instance in Taillard's format: a description line,
// a line starting with the job and machine counts, a marker line, then a
// machines x jobs duration matrix. Scanning stops at the first row that is
// not all integers.
func ParseTaillard(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("empty file")
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("missing size row")
	}
	sizes := strings.Fields(scanner.Text())
	if len(sizes) < 2 {
		return nil, fmt.Errorf("malformed size row %q", scanner.Text())
	}
	jobs, err := strconv.Atoi(sizes[0])
	if err != nil {
		return nil, fmt.Errorf("bad job count: %s", err.Error())
	}
	machines, err := strconv.Atoi(sizes[1])
	if err != nil {
		return nil, fmt.Errorf("bad machine count: %s", err.Error())
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("missing processing times")
	}

	var machineRows [][]int
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		integers := true
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				integers = false
				break
			}
			row[i] = v
		}
		if !integers {
			// end of the duration matrix
			break
		}
		machineRows = append(machineRows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(machineRows) != machines {
		return nil, fmt.Errorf("expected %d machine rows, got %d", machines, len(machineRows))
	}

	// stored machines x jobs in the file, kept jobs x machines here
	times := make([][]int, jobs)
	for j := 0; j < jobs; j++ {
		times[j] = make([]int, machines)
	}
	for m, row := range machineRows {
		if len(row) != jobs {
			return nil, fmt.Errorf("machine row %d has %d durations, want %d", m, len(row), jobs)
		}
		for j, d := range row {
			times[j][m] = d
		}
	}

	inst := &Instance{Type: "FSS", Jobs: jobs, Machines: machines, ProcessingTimes: times}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

package fss

type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Jobs            int     `json:"jobs"`
	Machines        int     `json:"machines"`
	ProcessingTimes [][]int `json:"processing_times"`
	NEHMakespan     int     `json:"neh_makespan"`

	Solution *Solution
}

type Solution struct {
	Makespan    int     `json:"makespan"`
	LBound      int     `json:"lbound"`
	UBound      int     `json:"ubound"`
	Optimal     bool    `json:"optimal"`
	Model       string  `json:"model"`
	Permutation []int   `json:"permutation"`
	StartTimes  [][]int `json:"start_times"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

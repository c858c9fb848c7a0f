// Package process_find enumerates running processes with gopsutil
package process_find

import (
	"fmt"

	"stattracker/process"

	gops "github.com/shirou/gopsutil/v3/process"
)

// Finder implements process.ProcessFinder
type Finder struct{}

var _ process.ProcessFinder = (*Finder)(nil)

func New() *Finder {
	return &Finder{}
}

// FindAllProcesses takes a fresh snapshot. Processes whose name cannot be read
// (exited during the walk, or access denied) are skipped.
func (f *Finder) FindAllProcesses() ([]process.ProcessInfo, error) {
	procs, err := gops.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	result := make([]process.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		result = append(result, process.ProcessInfo{PID: process.ProcessID(p.Pid), Name: name})
	}
	return result, nil
}

// FindProcessByName returns every process whose name matches exactly
func (f *Finder) FindProcessByName(name string) ([]process.ProcessInfo, error) {
	all, err := f.FindAllProcesses()
	if err != nil {
		return nil, err
	}

	var result []process.ProcessInfo
	for _, info := range all {
		if info.Name == name {
			result = append(result, info)
		}
	}
	return result, nil
}

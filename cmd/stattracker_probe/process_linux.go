package main

import (
	"stattracker/process"
	"stattracker/process_linux"
)

func openProcess(pid process.ProcessID) (process.Process, error) {
	return process_linux.NewWithPID(pid)
}

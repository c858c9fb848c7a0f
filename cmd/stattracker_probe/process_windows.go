package main

import (
	"stattracker/process"
	"stattracker/process_windows"
)

func openProcess(pid process.ProcessID) (process.Process, error) {
	return process_windows.NewWithPID(pid)
}

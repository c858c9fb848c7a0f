package main

import (
	"stattracker/process"
	"stattracker/process_linux"
)

// Hitman runs under Wine/Proton on linux, where the .exe shows up as a native process
func openProcess(pid process.ProcessID) (process.Process, error) {
	return process_linux.NewWithPID(pid)
}

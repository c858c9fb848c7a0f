// stattracker_probe walks every pointer chain of a game and prints each hop
// and the bytes at the end of the chain. Use it to check the offsets against
// a new game build or a recorded session.
package main

import (
	"flag"
	"fmt"
	"os"

	"stattracker/backend"
	"stattracker/process"
	"stattracker/process/memory_map"
	"stattracker/process_blob"
	"stattracker/process_find"
)

type memoryMapper interface {
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)
}

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to attach to (default: first running supported game)")
	dumpFlag := flag.String("dump", "", "Probe a recorded session directory instead of a live process")
	gameFlag := flag.String("game", "", "Game executable whose chains to use (default: the process name)")
	levelFlag := flag.Int("level", 0, "Hitman 2 level index used for the per-level counters")
	plainFlag := flag.Bool("plain", false, "Disable colors")
	flag.Parse()

	proc, name, err := attach(*dumpFlag, process.ProcessID(*pidFlag))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer proc.Close()

	game := backend.Game(name)
	if *gameFlag != "" {
		game = backend.Game(*gameFlag)
	}
	if backend.Chains(game, 0) == nil {
		fmt.Printf("Error: %q is not a supported game, use one of %v\n", game, backend.Games)
		os.Exit(1)
	}

	var mm []memory_map.MemoryMapItem
	if mapper, ok := proc.(memoryMapper); ok {
		mm, _ = mapper.GetMemoryMap()
	}

	fmt.Printf("Probing %s (pid %d)\n", game, proc.GetPID())
	failures := probe(os.Stdout, proc, game, *levelFlag, mm, *plainFlag)
	if failures > 0 {
		fmt.Printf("%d chains failed\n", failures)
		proc.Close()
		os.Exit(2)
	}
}

func attach(dump string, pid process.ProcessID) (process.Process, string, error) {
	if dump != "" {
		d, err := process_blob.LoadProcessDump(dump)
		if err != nil {
			return nil, "", fmt.Errorf("loading dump: %w", err)
		}
		return d, d.Name, nil
	}

	snapshot, err := process_find.New().FindAllProcesses()
	if err != nil {
		return nil, "", fmt.Errorf("listing processes: %w", err)
	}

	info, ok := pick(snapshot, pid)
	if !ok {
		return nil, "", backend.ErrNoGame
	}

	proc, err := openProcess(info.PID)
	if err != nil {
		return nil, "", fmt.Errorf("attaching to process %d: %w", info.PID, err)
	}
	return proc, info.Name, nil
}

// pick returns the process with pid, or the first supported game when pid is 0
func pick(snapshot []process.ProcessInfo, pid process.ProcessID) (process.ProcessInfo, bool) {
	if pid != 0 {
		for _, info := range snapshot {
			if info.PID == pid {
				return info, true
			}
		}
		return process.ProcessInfo{}, false
	}
	for _, game := range backend.Games {
		if info, ok := process.FirstByName(snapshot, string(game)); ok {
			return info, true
		}
	}
	return process.ProcessInfo{}, false
}

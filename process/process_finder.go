package process

// ProcessFinder defines operations for discovering running processes
type ProcessFinder interface {
	// FindAllProcesses returns a fresh snapshot of all running processes
	FindAllProcesses() ([]ProcessInfo, error)

	// FindProcessByName finds processes by their name (exact match)
	FindProcessByName(name string) ([]ProcessInfo, error)
}

// FirstByName returns the first process in the snapshot whose name matches exactly
func FirstByName(snapshot []ProcessInfo, name string) (ProcessInfo, bool) {
	for _, info := range snapshot {
		if info.Name == name {
			return info, true
		}
	}
	return ProcessInfo{}, false
}

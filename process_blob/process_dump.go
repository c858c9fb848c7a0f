package process_blob

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"stattracker/process"
	"stattracker/process/memory_map"
)

const (
	metadataFile  = "metadata.json"
	memoryMapFile = "process_memory_map.json"
)

type metadata struct {
	PID  process.ProcessID `json:"pid"`
	Name string            `json:"name"`
}

func blobFilename(dirname string, region memory_map.MemoryMapItem) string {
	return filepath.Join(dirname, fmt.Sprintf("blob_0x%x_%d.bin", region.Address, region.Size))
}

// ProcessDump implements process.Process for a loaded process dump
type ProcessDump struct {
	PID       process.ProcessID
	Name      string
	MemoryMap []memory_map.MemoryMapItem
	Blobs     map[uint64][]byte // Address -> Data
}

var (
	_ process.Process       = (*ProcessDump)(nil)
	_ process.ProcessFinder = (*ProcessDump)(nil)
)

// NewProcessDump creates a new ProcessDump instance
func NewProcessDump() *ProcessDump {
	return &ProcessDump{
		Blobs: make(map[uint64][]byte),
	}
}

// AddRegion maps data as a readable region starting at addr
func (p *ProcessDump) AddRegion(addr process.ProcessMemoryAddress, data []byte) {
	if p.Blobs == nil {
		p.Blobs = make(map[uint64][]byte)
	}
	p.MemoryMap = append(p.MemoryMap, memory_map.MemoryMapItem{
		Address: uint64(addr),
		Size:    uint(len(data)),
		Perms:   "r--p",
	})
	memory_map.Sort(p.MemoryMap)
	p.Blobs[uint64(addr)] = data
}

func (p *ProcessDump) Open(pid process.ProcessID) error {
	return errors.New("Open not supported for ProcessDump, use Load")
}

// Close drops the loaded data. Further reads fail with process.ErrProcessGone.
func (p *ProcessDump) Close() error {
	p.Blobs = nil
	p.MemoryMap = nil
	return nil
}

func (p *ProcessDump) GetPID() process.ProcessID {
	return p.PID
}

func (p *ProcessDump) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	if p.Blobs == nil {
		return nil, process.ErrProcessGone
	}

	region := memory_map.Find(uint64(addr), p.MemoryMap)
	if region == nil {
		return nil, fmt.Errorf("dump read at %s: %w", addr, process.ErrAddressNotMapped)
	}

	data, ok := p.Blobs[region.Address]
	if !ok {
		return nil, fmt.Errorf("no data for region 0x%x: %w", region.Address, process.ErrAddressNotMapped)
	}

	offset := uint64(addr) - region.Address
	if offset+uint64(size) > uint64(len(data)) {
		return nil, fmt.Errorf("read size %d at %s exceeds region data bounds: %w", size, addr, process.ErrAddressNotMapped)
	}

	result := make([]byte, size)
	copy(result, data[offset:offset+uint64(size)])
	return result, nil
}

// Load reads a dump directory written by Recorder
func (p *ProcessDump) Load(dirname string) error {
	metadataBytes, err := os.ReadFile(filepath.Join(dirname, metadataFile))
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	var md metadata
	if err := json.Unmarshal(metadataBytes, &md); err != nil {
		return fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	p.PID = md.PID
	p.Name = md.Name

	mmBytes, err := os.ReadFile(filepath.Join(dirname, memoryMapFile))
	if err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}

	if err := json.Unmarshal(mmBytes, &p.MemoryMap); err != nil {
		return fmt.Errorf("failed to unmarshal memory map: %w", err)
	}
	memory_map.Sort(p.MemoryMap)

	if p.Blobs == nil {
		p.Blobs = make(map[uint64][]byte)
	}

	for _, region := range p.MemoryMap {
		filename := blobFilename(dirname, region)
		data, err := os.ReadFile(filename)
		if errors.Is(err, os.ErrNotExist) {
			continue // region listed without data
		}
		if err != nil {
			return fmt.Errorf("failed to read blob %s: %w", filename, err)
		}

		p.Blobs[region.Address] = data
	}

	return nil
}

// LoadProcessDump is NewProcessDump followed by Load
func LoadProcessDump(dirname string) (*ProcessDump, error) {
	p := NewProcessDump()
	if err := p.Load(dirname); err != nil {
		return nil, err
	}
	return p, nil
}

// FindAllProcesses reports the dumped process, so a dump can stand in for a live
// process list when replaying.
func (p *ProcessDump) FindAllProcesses() ([]process.ProcessInfo, error) {
	return []process.ProcessInfo{{PID: p.PID, Name: p.Name}}, nil
}

func (p *ProcessDump) FindProcessByName(name string) ([]process.ProcessInfo, error) {
	if name != p.Name {
		return nil, nil
	}
	return p.FindAllProcesses()
}

// Opener returns an opener that hands out this dump for its own pid
func (p *ProcessDump) Opener() process.Opener {
	return func(pid process.ProcessID) (process.Process, error) {
		if pid != p.PID {
			return nil, fmt.Errorf("dump holds pid %d, not %d: %w", p.PID, pid, process.ErrProcessGone)
		}
		return p, nil
	}
}

func (p *ProcessDump) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	return p.MemoryMap, nil
}

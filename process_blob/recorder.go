package process_blob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"stattracker/process"
	"stattracker/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

type readKey struct {
	addr process.ProcessMemoryAddress
	size process.ProcessMemorySize
}

type recordedRead struct {
	data []byte
	seq  uint64
}

// Recorder wraps a live process and keeps the latest bytes of every
// successful read, so a session can be replayed later through ProcessDump.
type Recorder struct {
	inner   process.Process
	pid     process.ProcessID
	name    string
	dirname string // written on Close when set
	log     *logger.Logger

	mu    sync.Mutex
	reads map[readKey]recordedRead
	seq   uint64
}

var _ process.Process = (*Recorder)(nil)

// NewRecorder wraps inner. When dirname is not empty, Close saves the
// recording there before closing inner.
func NewRecorder(inner process.Process, name string, dirname string) *Recorder {
	return &Recorder{
		inner:   inner,
		pid:     inner.GetPID(),
		name:    name,
		dirname: dirname,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("recorder-%d", inner.GetPID()))),
		reads:   make(map[readKey]recordedRead),
	}
}

func (r *Recorder) Open(pid process.ProcessID) error {
	if err := r.inner.Open(pid); err != nil {
		return err
	}
	r.mu.Lock()
	r.pid = pid
	r.mu.Unlock()
	return nil
}

func (r *Recorder) GetPID() process.ProcessID {
	return r.inner.GetPID()
}

func (r *Recorder) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	data, err := r.inner.ReadMemory(addr, size)
	if err != nil {
		return nil, err
	}

	kept := make([]byte, len(data))
	copy(kept, data)

	r.mu.Lock()
	r.seq++
	r.reads[readKey{addr: addr, size: size}] = recordedRead{data: kept, seq: r.seq}
	r.mu.Unlock()

	return data, nil
}

// Len returns the number of distinct (address, size) reads recorded
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reads)
}

// Close saves the recording if a directory was configured, then closes the wrapped process
func (r *Recorder) Close() error {
	if r.dirname != "" {
		if err := r.Save(r.dirname); err != nil {
			r.log.Warn("Failed to save recording: ", err)
		}
	}
	return r.inner.Close()
}

// Save writes the recording as a dump directory: metadata.json,
// process_memory_map.json, and one blob file per merged region.
// Overlapping reads are laid down oldest first so the newest bytes win.
func (r *Recorder) Save(dirname string) error {
	r.mu.Lock()
	pid, name := r.pid, r.name
	items := make([]memory_map.MemoryMapItem, 0, len(r.reads))
	ordered := make([]readKey, 0, len(r.reads))
	for key := range r.reads {
		items = append(items, memory_map.MemoryMapItem{Address: uint64(key.addr), Size: uint(key.size), Perms: "r--p"})
		ordered = append(ordered, key)
	}
	reads := make(map[readKey]recordedRead, len(r.reads))
	for k, v := range r.reads {
		reads[k] = v
	}
	r.mu.Unlock()

	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	md, err := json.MarshalIndent(metadata{PID: pid, Name: name}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, metadataFile), md, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	regions := memory_map.Merge(items)
	mmJSON, err := json.MarshalIndent(regions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory map: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, memoryMapFile), mmJSON, 0644); err != nil {
		return fmt.Errorf("failed to write memory map file: %w", err)
	}

	sort.Slice(ordered, func(i, j int) bool {
		return reads[ordered[i]].seq < reads[ordered[j]].seq
	})

	blobs := make(map[uint64][]byte, len(regions))
	for _, region := range regions {
		blobs[region.Address] = make([]byte, region.Size)
	}
	for _, key := range ordered {
		region := memory_map.Find(uint64(key.addr), regions)
		if region == nil {
			continue
		}
		copy(blobs[region.Address][uint64(key.addr)-region.Address:], reads[key].data)
	}

	for _, region := range regions {
		if err := os.WriteFile(blobFilename(dirname, region), blobs[region.Address], 0644); err != nil {
			return fmt.Errorf("failed to write blob for region 0x%x: %w", region.Address, err)
		}
	}

	r.log.Infoln("Recording saved to", dirname, ":", len(ordered), "reads in", len(regions), "regions")
	return nil
}

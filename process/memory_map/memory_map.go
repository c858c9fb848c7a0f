package memory_map

import (
	"fmt"
	"sort"
)

// MemoryMapItem represents a memory region in a process's address space
type MemoryMapItem struct {
	Address uint64 // The starting address of the memory region
	Size    uint   // The size of the memory region in bytes
	Perms   string // Permissions (e.g., "r-xp" for read, execute, private)
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", mmItem.Address, mmItem.Size, mmItem.Perms)
}

// End returns the first address past the region
func (mmItem MemoryMapItem) End() uint64 {
	return mmItem.Address + uint64(mmItem.Size)
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return len(mmItem.Perms) > 0 && mmItem.Perms[0] == 'r'
}

// MemoryMap reads the memory map of a live process
type MemoryMap interface {
	ReadMemoryMap(pid int) ([]MemoryMapItem, error)
}

// Sort orders regions by start address, which Find requires
func Sort(mm []MemoryMapItem) {
	sort.Slice(mm, func(i, j int) bool {
		return mm[i].Address < mm[j].Address
	})
}

// Find returns the region containing addr. mm must be sorted.
func Find(addr uint64, mm []MemoryMapItem) *MemoryMapItem {
	i := sort.Search(len(mm), func(i int) bool {
		return mm[i].End() > addr
	})
	if i < len(mm) && mm[i].Address <= addr {
		return &mm[i]
	}
	return nil
}

// Contains reports whether [addr, addr+size) lies inside a single readable region
func Contains(addr uint64, size uint, mm []MemoryMapItem) bool {
	item := Find(addr, mm)
	if item == nil || !item.IsReadable() {
		return false
	}
	return addr+uint64(size) <= item.End()
}

// Merge sorts mm and joins regions that touch or overlap.
// Perms of the first region in a run are kept.
func Merge(mm []MemoryMapItem) []MemoryMapItem {
	if len(mm) == 0 {
		return nil
	}
	items := make([]MemoryMapItem, len(mm))
	copy(items, mm)
	Sort(items)

	out := []MemoryMapItem{items[0]}
	for _, item := range items[1:] {
		last := &out[len(out)-1]
		if item.Address <= last.End() {
			if item.End() > last.End() {
				last.Size = uint(item.End() - last.Address)
			}
			continue
		}
		out = append(out, item)
	}
	return out
}

package process_blob

import (
	"errors"
	"testing"

	"stattracker/process"

	"github.com/google/go-cmp/cmp"
)

func TestProcessDump_ReadMemory(t *testing.T) {
	dump := NewProcessDump()
	dump.AddRegion(0x1000, []byte{0, 1, 2, 3, 4, 5, 6, 7})

	got, err := dump.ReadMemory(0x1002, 4)
	if err != nil {
		t.Fatalf("ReadMemory err=%v", err)
	}
	if diff := cmp.Diff([]byte{2, 3, 4, 5}, got); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	if _, err := dump.ReadMemory(0x1006, 4); !errors.Is(err, process.ErrAddressNotMapped) {
		t.Fatalf("read past region end: expected ErrAddressNotMapped, got %v", err)
	}
	if _, err := dump.ReadMemory(0x2000, 1); !errors.Is(err, process.ErrAddressNotMapped) {
		t.Fatalf("unmapped read: expected ErrAddressNotMapped, got %v", err)
	}
}

func TestProcessDump_ClosedReportsGone(t *testing.T) {
	dump := NewProcessDump()
	dump.AddRegion(0x1000, []byte{1, 2, 3, 4})
	_ = dump.Close()

	if _, err := dump.ReadMemory(0x1000, 4); !errors.Is(err, process.ErrProcessGone) {
		t.Fatalf("expected ErrProcessGone, got %v", err)
	}
}

func TestRecorder_SaveLoadRoundTrip(t *testing.T) {
	live := NewProcessDump()
	live.PID = 77
	live.AddRegion(0x1000, []byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7})
	live.AddRegion(0x5000, []byte("C2-3\\xyz"))

	rec := NewRecorder(live, "hitman2.exe", "")
	reads := []struct {
		addr process.ProcessMemoryAddress
		size process.ProcessMemorySize
	}{
		{0x1000, 4},
		{0x1002, 4}, // overlaps the first read
		{0x5000, 5},
	}
	for _, rd := range reads {
		if _, err := rec.ReadMemory(rd.addr, rd.size); err != nil {
			t.Fatalf("ReadMemory(%s) err=%v", rd.addr, err)
		}
	}
	if _, err := rec.ReadMemory(0x9000, 4); err == nil {
		t.Fatalf("expected failed read to pass through")
	}
	if rec.Len() != 3 {
		t.Fatalf("Len=%d want 3", rec.Len())
	}

	dir := t.TempDir()
	if err := rec.Save(dir); err != nil {
		t.Fatalf("Save err=%v", err)
	}

	replay, err := LoadProcessDump(dir)
	if err != nil {
		t.Fatalf("LoadProcessDump err=%v", err)
	}
	if replay.PID != 77 || replay.Name != "hitman2.exe" {
		t.Fatalf("metadata pid=%d name=%q", replay.PID, replay.Name)
	}
	if len(replay.MemoryMap) != 2 {
		t.Fatalf("expected contiguous reads merged into 2 regions, got %v", replay.MemoryMap)
	}

	for _, rd := range reads {
		want, _ := live.ReadMemory(rd.addr, rd.size)
		got, err := replay.ReadMemory(rd.addr, rd.size)
		if err != nil {
			t.Fatalf("replay ReadMemory(%s) err=%v", rd.addr, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("replay mismatch at %s (-want +got):\n%s", rd.addr, diff)
		}
	}

	if _, err := replay.ReadMemory(0x1006, 1); err == nil {
		t.Fatalf("bytes never read must not be replayable")
	}
}

func TestRecorder_CloseSavesWhenConfigured(t *testing.T) {
	live := NewProcessDump()
	live.PID = 5
	live.AddRegion(0x1000, []byte{1, 2, 3, 4})

	dir := t.TempDir()
	rec := NewRecorder(live, "HitmanContracts.exe", dir)
	if _, err := rec.ReadMemory(0x1000, 4); err != nil {
		t.Fatalf("ReadMemory err=%v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close err=%v", err)
	}

	replay, err := LoadProcessDump(dir)
	if err != nil {
		t.Fatalf("LoadProcessDump err=%v", err)
	}
	got, err := replay.ReadMemory(0x1000, 4)
	if err != nil {
		t.Fatalf("replay ReadMemory err=%v", err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4}, got); diff != "" {
		t.Fatalf("replay mismatch (-want +got):\n%s", diff)
	}
}

package backend

import (
	"testing"

	"stattracker/mission"
	"stattracker/window"

	"github.com/google/go-cmp/cmp"
)

func TestHm2Poll_UnknownLevel(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "ZZ-9\\")
	g.setUint32(hm2Timer, 500)

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("unknown level must not end the session")
	}
	want := mission.GameData{Mission: "Hitman 2 SA"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
}

func TestHm2Poll_UndecodableLevel(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "\xff\xfe\xfd\xfc\xfb")

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok || got.Mission != "Hitman 2 SA" || got.Rating != nil {
		t.Fatalf("Poll=%+v ok=%v", got, ok)
	}
}

func TestHm2Poll_TimerZero(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 0)
	g.setHm2Stats(3, [8]uint32{1, 0, 0, 1, 0, 4, 0, 0})

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	want := mission.GameData{Mission: "Tubeway Torpedo"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
}

func TestHm2Poll_TimerReadFailureReadsAsZero(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.breakChain(hm2Timer)

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("a failed timer read must not end the session")
	}
	if got.Mission != "Tubeway Torpedo" || got.Ticks != 0 || got.Rating != nil {
		t.Fatalf("Poll=%+v", got)
	}
}

func TestHm2Poll_FullRatedPoll(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 3*3600+15*60)
	ref := hm2Combinations[19] // (1,0,0,1,0,4,0,0)
	g.setHm2Stats(3, ref.Array())

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	want := mission.GameData{
		Mission: "Tubeway Torpedo",
		Ticks:   3*3600 + 15*60,
		Rating:  &mission.Rating{Stats: ref, SilentAssassin: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
	if got.Seconds() != 195 {
		t.Fatalf("Seconds()=%d", got.Seconds())
	}
}

func TestHm2Poll_NotQualifying(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C1-1\\")
	g.setUint32(hm2Timer, 60)
	g.setHm2Stats(0, [8]uint32{0, 0, 0, 2, 0, 0, 0, 0})

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok || got.Rating == nil {
		t.Fatalf("Poll=%+v ok=%v", got, ok)
	}
	if got.Rating.SilentAssassin {
		t.Fatalf("two alerts must not qualify")
	}
}

func TestHm2Poll_LevelDisplacementSelectsBlock(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-4\\")
	g.setUint32(hm2Timer, 60)
	g.setHm2Stats(4, [8]uint32{0, 0, 0, 0, 0, 0, 0, 0})
	g.setHm2Stats(3, [8]uint32{0, 9, 9, 9, 9, 9, 9, 9}) // a different level's block

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok || got.Rating == nil {
		t.Fatalf("Poll=%+v ok=%v", got, ok)
	}
	if got.Rating.Stats != (mission.Stats{}) {
		t.Fatalf("read the wrong level block: %v", got.Rating.Stats)
	}
}

func TestHm2Poll_UnratedLevelReportsTimer(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C0-1\\")
	g.setUint32(hm2Timer, 120)

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	want := mission.GameData{Mission: "The Gontranno Sanctuary", Ticks: 120}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
}

func TestHm2Poll_ShotsBackup(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 600)
	g.setHm2Stats(3, [8]uint32{2, 0, 0, 0, 0, 0, 0, 0})

	h := newHm2(g.dump, noWindow)

	first, ok := h.Poll()
	if !ok || first.Rating.Stats.ShotsFired != 2 {
		t.Fatalf("first poll=%+v ok=%v", first, ok)
	}

	g.breakChain(hm2Shots)
	second, ok := h.Poll()
	if !ok {
		t.Fatalf("a failed shots read must not end the session")
	}
	if second.Rating.Stats.ShotsFired != 2 {
		t.Fatalf("expected backup value 2, got %d", second.Rating.Stats.ShotsFired)
	}

	g.repairChain(hm2Shots)
	g.setUint32(hm2Shots, 3)
	third, _ := h.Poll()
	if third.Rating.Stats.ShotsFired != 3 {
		t.Fatalf("expected refreshed value 3, got %d", third.Rating.Stats.ShotsFired)
	}
}

func TestHm2Poll_ShotsBackupStartsAtZero(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 600)
	g.setHm2Stats(3, [8]uint32{5, 0, 0, 0, 0, 0, 0, 0})
	g.breakChain(hm2Shots)

	got, ok := newHm2(g.dump, noWindow).Poll()
	if !ok || got.Rating.Stats.ShotsFired != 0 {
		t.Fatalf("Poll=%+v ok=%v", got, ok)
	}
}

func TestHm2Poll_CounterFailureEndsSession(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 600)
	g.setHm2Stats(3, [8]uint32{})
	g.breakChain(hm2Counters[0])

	if got, ok := newHm2(g.dump, noWindow).Poll(); ok {
		t.Fatalf("expected session end, got %+v", got)
	}
}

func TestHm2Poll_ProcessGone(t *testing.T) {
	g := newFakeGame(100)
	g.setString(hm2Map, "C2-3\\")
	g.setUint32(hm2Timer, 600)
	g.setHm2Stats(3, [8]uint32{})

	h := newHm2(g.dump, noWindow)
	if _, ok := h.Poll(); !ok {
		t.Fatalf("first poll must succeed")
	}

	_ = g.dump.Close()
	if got, ok := h.Poll(); ok {
		t.Fatalf("expected session end, got %+v", got)
	}
}

func TestHm2GameWindow(t *testing.T) {
	g := newFakeGame(100)
	finder := window.FinderFunc(func(title string) (window.Rect, bool) {
		return window.Rect{Right: 640, Bottom: 480}, title == "Hitman2"
	})

	h := newHm2(g.dump, finder)
	r, ok := h.GameWindow()
	if !ok || r.Width() != 640 {
		t.Fatalf("GameWindow=%+v ok=%v", r, ok)
	}
	if h.Game() != Hitman2 || h.PID() != 100 {
		t.Fatalf("Game=%s PID=%d", h.Game(), h.PID())
	}
}

func TestHm2Tables(t *testing.T) {
	if len(hm2Combinations) != 27 {
		t.Fatalf("combinations=%d", len(hm2Combinations))
	}
	if len(hm2Levels) != 21 {
		t.Fatalf("levels=%d", len(hm2Levels))
	}
	for id, level := range hm2Levels {
		if len(id) != int(levelIDSize) {
			t.Fatalf("level id %q is not %d bytes", id, levelIDSize)
		}
		if level.Rated && (level.Index < 0 || level.Index >= len(hm2LevelOffsets)) {
			t.Fatalf("level %q index %d out of range", id, level.Index)
		}
	}
}

package backend

import (
	"math"
	"testing"

	"stattracker/mission"

	"github.com/google/go-cmp/cmp"
)

func TestHmCPoll_UnknownLevel(t *testing.T) {
	g := newFakeGame(200)
	g.setString(hmcMap, "MENU\x00")

	got, ok := newHmC(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	if diff := cmp.Diff(mission.GameData{Mission: "Hitman Contracts"}, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
}

func TestHmCPoll_TimerZero(t *testing.T) {
	g := newFakeGame(200)
	g.setString(hmcMap, "C03-1")
	g.setFloat32(hmcTimer, 0)

	got, ok := newHmC(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	if diff := cmp.Diff(mission.GameData{Mission: "Beldingford Manor"}, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
}

func TestHmCPoll_FullRatedPoll(t *testing.T) {
	g := newFakeGame(200)
	g.setString(hmcMap, "C06-2")
	g.setFloat32(hmcTimer, 90.5)
	ref := hmcCombinations[0] // unlimited shots and headshots, one alert
	stats := mission.NewStats(40, 0, 12, 1, 0, 0, 0, 0)
	g.setHmCStats(stats.Array())

	got, ok := newHmC(g.dump, noWindow).Poll()
	if !ok {
		t.Fatalf("Poll returned false")
	}
	want := mission.GameData{
		Mission: "Deadly Cargo",
		Ticks:   5430,
		Rating:  &mission.Rating{Stats: stats, SilentAssassin: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GameData mismatch (-want +got):\n%s", diff)
	}
	if !stats.LessOrEqual(ref) {
		t.Fatalf("test stats must sit under the first reference row")
	}
}

func TestHmCPoll_ShotsFailureEndsSession(t *testing.T) {
	g := newFakeGame(200)
	g.setString(hmcMap, "C01-1")
	g.setFloat32(hmcTimer, 10)
	g.setHmCStats([8]uint32{})
	g.breakChain(hmcShots)

	if got, ok := newHmC(g.dump, noWindow).Poll(); ok {
		t.Fatalf("expected session end, got %+v", got)
	}
}

func TestHmCPoll_ProcessGone(t *testing.T) {
	g := newFakeGame(200)
	g.setString(hmcMap, "C01-1")
	_ = g.dump.Close()

	if _, ok := newHmC(g.dump, noWindow).Poll(); ok {
		t.Fatalf("expected session end")
	}
}

func TestSecondsToTicks(t *testing.T) {
	cases := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{-3, 0},
		{float32(math.NaN()), 0},
		{0.5, 30},
		{2.5, 150},
		{90.5, 5430},
		{float32(math.Inf(1)), math.MaxUint32},
	}
	for _, tc := range cases {
		if got := secondsToTicks(tc.in); got != tc.want {
			t.Fatalf("secondsToTicks(%v)=%d want %d", tc.in, got, tc.want)
		}
	}
}

func TestHmCTables(t *testing.T) {
	if len(hmcCombinations) != 17 {
		t.Fatalf("combinations=%d", len(hmcCombinations))
	}
	if len(hmcLevels) != 13 {
		t.Fatalf("levels=%d", len(hmcLevels))
	}
	for id := range hmcLevels {
		if len(id) != int(levelIDSize) {
			t.Fatalf("level id %q is not %d bytes", id, levelIDSize)
		}
	}
}

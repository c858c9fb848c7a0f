package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"stattracker/backend"
	"stattracker/mission"
	"stattracker/process"
	"stattracker/window"

	"github.com/google/go-cmp/cmp"
)

// fakeBackend replays a fixed list of poll results, then reports the session ended
type fakeBackend struct {
	polls  []mission.GameData
	rect   *window.Rect
	closed int
}

func (b *fakeBackend) Game() backend.Game     { return backend.Hitman2 }
func (b *fakeBackend) PID() process.ProcessID { return 4242 }

func (b *fakeBackend) Poll() (mission.GameData, bool) {
	if len(b.polls) == 0 {
		return mission.GameData{}, false
	}
	data := b.polls[0]
	b.polls = b.polls[1:]
	return data, true
}

func (b *fakeBackend) GameWindow() (window.Rect, bool) {
	if b.rect == nil {
		return window.Rect{}, false
	}
	return *b.rect, true
}

func (b *fakeBackend) Close() error {
	b.closed++
	return nil
}

type fakeDetector struct {
	backends []backend.Backend
	err      error
	calls    int
}

func (d *fakeDetector) Detect() (backend.Backend, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	if len(d.backends) == 0 {
		return nil, backend.ErrNoGame
	}
	b := d.backends[0]
	d.backends = d.backends[1:]
	return b, nil
}

// fakeClock advances only when told to
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(t *testing.T, det Detector, sinks ...Sink) (*Tracker, *fakeClock) {
	t.Helper()
	tr, err := New(Config{PollInterval: 10 * time.Millisecond, DetectInterval: time.Second}, det, sinks...)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	tr.now = clock.now
	ids := 0
	tr.newID = func() string {
		ids++
		return []string{"session-a", "session-b", "session-c"}[ids-1]
	}
	return tr, clock
}

func TestNew_Validates(t *testing.T) {
	det := &fakeDetector{}
	if _, err := New(Config{PollInterval: time.Second, DetectInterval: time.Second}, nil); err == nil {
		t.Fatalf("expected error for nil detector")
	}
	if _, err := New(Config{DetectInterval: time.Second}, det); err == nil {
		t.Fatalf("expected error for zero poll interval")
	}
	if _, err := New(Config{PollInterval: time.Second}, det); err == nil {
		t.Fatalf("expected error for zero detect interval")
	}
}

func TestStep_WaitingThrottlesDetect(t *testing.T) {
	det := &fakeDetector{}
	tr, clock := newTestTracker(t, det)

	if snap := tr.Step(); snap.State != Waiting {
		t.Fatalf("State=%s", snap.State)
	}
	clock.advance(500 * time.Millisecond)
	tr.Step()
	if det.calls != 1 {
		t.Fatalf("detect calls=%d, want 1 inside the interval", det.calls)
	}

	clock.advance(500 * time.Millisecond)
	tr.Step()
	if det.calls != 2 {
		t.Fatalf("detect calls=%d, want 2 after the interval", det.calls)
	}
}

func TestStep_DetectErrorKeepsWaiting(t *testing.T) {
	det := &fakeDetector{err: errors.New("snapshot failed")}
	tr, _ := newTestTracker(t, det)

	if snap := tr.Step(); snap.State != Waiting {
		t.Fatalf("State=%s", snap.State)
	}
}

func TestStep_SessionLifecycle(t *testing.T) {
	rating := mission.Classify(mission.Stats{}, []mission.Stats{{}})
	first := &fakeBackend{
		polls: []mission.GameData{
			{Mission: "Hawke's Bay", Ticks: 0},
			{Mission: "Hawke's Bay", Ticks: 120, Rating: &rating},
		},
		rect: &window.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
	}
	second := &fakeBackend{polls: []mission.GameData{{Mission: "Miami"}}}
	det := &fakeDetector{backends: []backend.Backend{first, second}}

	var published []Snapshot
	tr, clock := newTestTracker(t, det, SinkFunc(func(s Snapshot) { published = append(published, s) }))
	start := clock.t

	// detect and first poll happen in the same cycle
	snap := tr.Step()
	want := Snapshot{
		State:     Running,
		SessionID: "session-a",
		Game:      backend.Hitman2,
		PID:       4242,
		Data:      mission.GameData{Mission: "Hawke's Bay"},
		Window:    &window.Rect{Right: 1920, Bottom: 1080},
		UpdatedAt: start,
	}
	if diff := cmp.Diff(want, snap); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	clock.advance(10 * time.Millisecond)
	snap = tr.Step()
	if snap.Data.Ticks != 120 || snap.Data.Rating == nil || !snap.Data.Rating.SilentAssassin {
		t.Fatalf("unexpected data %+v", snap.Data)
	}
	if tr.last.Elapsed() != 2*time.Second {
		t.Fatalf("last poll elapsed %v", tr.last.Elapsed())
	}

	// third poll ends the session
	clock.advance(10 * time.Millisecond)
	snap = tr.Step()
	if snap.State != Waiting || snap.SessionID != "" {
		t.Fatalf("expected waiting snapshot, got %+v", snap)
	}
	if first.closed != 1 {
		t.Fatalf("closed=%d, want 1", first.closed)
	}
	if tr.last != (mission.GameData{}) {
		t.Fatalf("last poll kept after the session ended: %+v", tr.last)
	}

	// no re-detect until a full interval has passed since the session ended
	clock.advance(500 * time.Millisecond)
	tr.Step()
	if det.calls != 1 {
		t.Fatalf("detect calls=%d, want 1", det.calls)
	}

	clock.advance(500 * time.Millisecond)
	snap = tr.Step()
	if snap.State != Running || snap.SessionID != "session-b" || snap.Data.Mission != "Miami" {
		t.Fatalf("expected second session, got %+v", snap)
	}
	if snap.Window != nil {
		t.Fatalf("expected no window, got %+v", snap.Window)
	}

	if len(published) != 5 {
		t.Fatalf("published %d snapshots, want 5", len(published))
	}
}

func TestRun_StopsAndClosesBackend(t *testing.T) {
	b := &fakeBackend{}
	for i := 0; i < 1000; i++ {
		b.polls = append(b.polls, mission.GameData{Mission: "Paris", Ticks: uint32(i)})
	}
	det := &fakeDetector{backends: []backend.Backend{b}}

	store := NewStore()
	tr, err := New(Config{PollInterval: time.Millisecond, DetectInterval: time.Second}, det, store)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tr.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for store.Latest().State != Running {
		select {
		case <-deadline:
			t.Fatalf("tracker never reached running")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run err=%v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop")
	}

	if b.closed != 1 {
		t.Fatalf("closed=%d, want 1", b.closed)
	}
	if store.Latest().SessionID == "" {
		t.Fatalf("expected a generated session id")
	}
}

func TestStore_StartsWaiting(t *testing.T) {
	s := NewStore()
	if got := s.Latest(); got.State != Waiting {
		t.Fatalf("State=%s", got.State)
	}

	s.Publish(Snapshot{State: Running, SessionID: "x"})
	if got := s.Latest(); got.SessionID != "x" {
		t.Fatalf("Latest=%+v", got)
	}
}

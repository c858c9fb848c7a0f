package backend

import (
	"stattracker/mission"
	"stattracker/process"
	"stattracker/window"
)

// Hm2 reads Hitman 2: Silent Assassin.
//
// The seven level counters live in a per-level block, selected by substituting
// the level's displacement into the shared counter chain. Shots fired sits
// outside that block and its chain breaks from time to time, so the last good
// value is kept and reported while the read fails.
type Hm2 struct {
	session
	shotsFiredBackup uint32
}

var _ Backend = (*Hm2)(nil)

func newHm2(proc process.Process, windows window.Finder) *Hm2 {
	return &Hm2{session: newSession(Hitman2, hm2WindowTitle, proc, windows)}
}

func (h *Hm2) Poll() (mission.GameData, bool) {
	raw, err := hm2Map.read(h.proc, levelIDSize)
	if err != nil {
		return h.end("level read failed", err)
	}

	level, ok := lookupLevel(hm2Levels, raw)
	if !ok {
		h.outcome(outcomeUnknownLevel)
		return mission.GameData{Mission: hm2FallbackName}, true
	}

	// timer counts 1/60 s directly
	ticks, err := hm2Timer.uint32(h.proc)
	if err != nil {
		h.log.Debugln("Timer read failed:", err)
		ticks = 0
	}

	if ticks == 0 {
		h.outcome(outcomeIdle)
		return mission.GameData{Mission: level.Name}, true
	}

	if !level.Rated {
		h.outcome(outcomeUnrated)
		return mission.GameData{Mission: level.Name, Ticks: ticks}, true
	}

	stats, err := h.loadStats(level.Index)
	if err != nil {
		return h.end("counter read failed", err)
	}

	return h.rated(level.Name, ticks, stats, hm2Combinations)
}

func (h *Hm2) loadStats(levelIndex int) (mission.Stats, error) {
	var values [mission.StatCount]uint32
	displacement := hm2LevelOffsets[levelIndex]

	for i, c := range hm2Counters {
		v, err := c.withOffset(hm2LevelSlot, displacement).uint32(h.proc)
		if err != nil {
			counterReadFailures.WithLabelValues(string(h.game), counterNames[i+1]).Inc()
			return mission.Stats{}, err
		}
		values[i+1] = v
	}

	values[0] = h.shotsFired()
	return mission.StatsFromArray(values), nil
}

// shotsFired refreshes the backup on success and falls back to it on failure
func (h *Hm2) shotsFired() uint32 {
	shots, err := hm2Shots.uint32(h.proc)
	if err != nil {
		counterReadFailures.WithLabelValues(string(h.game), counterNames[0]).Inc()
		shotsBackupUsed.Inc()
		h.log.Debugln("Shots fired read failed, using backup", h.shotsFiredBackup, ":", err)
		return h.shotsFiredBackup
	}
	h.shotsFiredBackup = shots
	return shots
}

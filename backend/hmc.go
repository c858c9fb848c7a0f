package backend

import (
	"math"

	"stattracker/mission"
	"stattracker/pod"
	"stattracker/process"
	"stattracker/window"
)

// HmC reads Hitman: Contracts. Every counter, shots fired included, must read
// once a mission runs; a failure ends the session.
type HmC struct {
	session
}

var _ Backend = (*HmC)(nil)

func newHmC(proc process.Process, windows window.Finder) *HmC {
	return &HmC{session: newSession(Contracts, hmcWindowTitle, proc, windows)}
}

func (h *HmC) Poll() (mission.GameData, bool) {
	raw, err := hmcMap.read(h.proc, levelIDSize)
	if err != nil {
		return h.end("level read failed", err)
	}

	level, ok := lookupLevel(hmcLevels, raw)
	if !ok {
		h.outcome(outcomeUnknownLevel)
		return mission.GameData{Mission: hmcFallbackName}, true
	}

	seconds, err := pod.Float32(hmcTimer.read(h.proc, 4))
	if err != nil {
		h.log.Debugln("Timer read failed:", err)
		seconds = 0
	}

	ticks := secondsToTicks(seconds)
	if ticks == 0 {
		h.outcome(outcomeIdle)
		return mission.GameData{Mission: level.Name}, true
	}

	if !level.Rated {
		h.outcome(outcomeUnrated)
		return mission.GameData{Mission: level.Name, Ticks: ticks}, true
	}

	stats, err := h.loadStats()
	if err != nil {
		return h.end("counter read failed", err)
	}

	return h.rated(level.Name, ticks, stats, hmcCombinations)
}

func (h *HmC) loadStats() (mission.Stats, error) {
	var values [mission.StatCount]uint32

	for i, c := range hmcCounters {
		v, err := c.uint32(h.proc)
		if err != nil {
			counterReadFailures.WithLabelValues(string(h.game), counterNames[i+1]).Inc()
			return mission.Stats{}, err
		}
		values[i+1] = v
	}

	shots, err := hmcShots.uint32(h.proc)
	if err != nil {
		counterReadFailures.WithLabelValues(string(h.game), counterNames[0]).Inc()
		return mission.Stats{}, err
	}
	values[0] = shots

	return mission.StatsFromArray(values), nil
}

// secondsToTicks rescales the Contracts timer, kept as float seconds, into
// 1/60 s ticks. The product is truncated in single precision; NaN and
// negative values read as a stopped timer.
func secondsToTicks(seconds float32) uint32 {
	v := 60 * seconds
	switch {
	case math.IsNaN(float64(v)), v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}

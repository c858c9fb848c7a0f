// Package mission holds the per-poll mission state and the Silent Assassin classifier
package mission

import "fmt"

// StatCount is the number of counters in Stats
const StatCount = 8

// Stats is the fixed set of mission counters, in the order the games lay them out
type Stats struct {
	ShotsFired      uint32 `json:"shots_fired"`
	CloseEncounters uint32 `json:"close_encounters"`
	Headshots       uint32 `json:"headshots"`
	Alerts          uint32 `json:"alerts"`
	EnemiesKilled   uint32 `json:"enemies_killed"`
	EnemiesHarmed   uint32 `json:"enemies_harmed"`
	InnocentsKilled uint32 `json:"innocents_killed"`
	InnocentsHarmed uint32 `json:"innocents_harmed"`
}

// NewStats builds Stats from the eight counters in layout order
func NewStats(shots, closeEncounters, headshots, alerts, enemiesKilled, enemiesHarmed, innocentsKilled, innocentsHarmed uint32) Stats {
	return Stats{
		ShotsFired:      shots,
		CloseEncounters: closeEncounters,
		Headshots:       headshots,
		Alerts:          alerts,
		EnemiesKilled:   enemiesKilled,
		EnemiesHarmed:   enemiesHarmed,
		InnocentsKilled: innocentsKilled,
		InnocentsHarmed: innocentsHarmed,
	}
}

func StatsFromArray(a [StatCount]uint32) Stats {
	return NewStats(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
}

func (s Stats) Array() [StatCount]uint32 {
	return [StatCount]uint32{
		s.ShotsFired,
		s.CloseEncounters,
		s.Headshots,
		s.Alerts,
		s.EnemiesKilled,
		s.EnemiesHarmed,
		s.InnocentsKilled,
		s.InnocentsHarmed,
	}
}

// LessOrEqual reports whether every counter of s is at most the same counter of ref
func (s Stats) LessOrEqual(ref Stats) bool {
	a, b := s.Array(), ref.Array()
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func (s Stats) String() string {
	return fmt.Sprintf("shots=%d close=%d headshots=%d alerts=%d enemies=%d/%d innocents=%d/%d",
		s.ShotsFired, s.CloseEncounters, s.Headshots, s.Alerts,
		s.EnemiesKilled, s.EnemiesHarmed, s.InnocentsKilled, s.InnocentsHarmed)
}

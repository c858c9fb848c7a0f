package mission

import (
	"encoding/json"
	"fmt"
	"time"
)

// TicksPerSecond is the resolution of the mission timer
const TicksPerSecond = 60

// GameData is the result of one poll
type GameData struct {
	Mission string  `json:"mission"`
	Ticks   uint32  `json:"ticks"`            // elapsed mission time in 1/60 s
	Rating  *Rating `json:"rating,omitempty"` // nil until the level is active and rated
}

// Seconds returns the elapsed time in whole seconds
func (g GameData) Seconds() uint32 {
	return g.Ticks / TicksPerSecond
}

func (g GameData) Elapsed() time.Duration {
	return time.Duration(g.Ticks) * time.Second / TicksPerSecond
}

// Clock formats the elapsed time as MM:SS.ff, where ff counts ticks inside the second
func (g GameData) Clock() string {
	return fmt.Sprintf("%02d:%02d.%02d", g.Ticks/3600, (g.Ticks/60)%60, g.Ticks%60)
}

// Running reports whether the mission timer has started
func (g GameData) Running() bool {
	return g.Ticks > 0
}

// MarshalJSON adds the elapsed whole seconds next to ticks
func (g GameData) MarshalJSON() ([]byte, error) {
	type plain GameData
	return json.Marshal(struct {
		plain
		Seconds uint32 `json:"seconds"`
	}{plain(g), g.Seconds()})
}

package backend

import (
	"stattracker/mission"
	"stattracker/process"
)

const (
	hmcBase         process.ProcessMemoryAddress = 0x400000
	hmcFallbackName                              = "Hitman Contracts"
	hmcWindowTitle                               = "Hitman Contracts"
)

var (
	hmcMap   = chain{base: hmcBase + 0x393D58, offsets: []process.ProcessMemorySize{0x234, 0xBDE}}
	hmcTimer = chain{base: hmcBase + 0x39457C, offsets: []process.ProcessMemorySize{0x24}}
	hmcShots = chain{base: hmcBase + 0x3947B0, offsets: []process.ProcessMemorySize{0xBA0, 0x104, 0x82F}}
)

// hmcCounters are the seven counters after shots fired, in mission.Stats order.
// Contracts keeps one counter block for every level.
var hmcCounters = [mission.StatCount - 1]chain{
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB2F}}, // close encounters
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB17}}, // headshots
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB2B}}, // alerts
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB1F}}, // enemies killed
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB1B}}, // enemies harmed
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB27}}, // innocents killed
	{base: hmcBase + 0x3947C0, offsets: []process.ProcessMemorySize{0xB23}}, // innocents harmed
}

var hmcLevels = map[string]Level{
	"C00-1": {Name: "Training", Rated: true},
	"C01-1": {Name: "Asylum Aftermath", Rated: true},
	"C01-2": {Name: "The Meat King's Party", Rated: true},
	"C02-1": {Name: "The Bjarkhov Bomb", Rated: true},
	"C03-1": {Name: "Beldingford Manor", Rated: true},
	"C06-1": {Name: "Rendezvous in Rotterdam", Rated: true},
	"C06-2": {Name: "Deadly Cargo", Rated: true},
	"C07-1": {Name: "Traditions of the Trade", Rated: true},
	"C08-1": {Name: "Slaying a Dragon", Rated: true},
	"C08-2": {Name: "The Wang Fou Incident", Rated: true},
	"C08-3": {Name: "The Seafood Massacre", Rated: true},
	"C08-4": {Name: "Lee Hong Assassination", Rated: true},
	"C09-1": {Name: "Hunter and Hunted", Rated: true},
}

// hmcCombinations are the counter allowances that still earn Silent Assassin.
// The first row allows any number of shots and headshots as long as nobody notices.
var hmcCombinations = []mission.Stats{
	mission.NewStats(999, 0, 999, 1, 0, 0, 0, 0),
	mission.NewStats(2, 1, 1, 0, 0, 0, 0, 0),
	mission.NewStats(2, 1, 0, 0, 0, 1, 0, 0),
	mission.NewStats(2, 0, 1, 1, 0, 1, 0, 0),
	mission.NewStats(2, 0, 0, 0, 0, 2, 0, 0),
	mission.NewStats(1, 1, 1, 0, 0, 2, 0, 0),
	mission.NewStats(1, 1, 0, 0, 1, 0, 0, 0),
	mission.NewStats(1, 1, 0, 0, 0, 3, 0, 0),
	mission.NewStats(1, 0, 1, 1, 1, 0, 0, 0),
	mission.NewStats(1, 0, 1, 1, 0, 3, 0, 0),
	mission.NewStats(1, 0, 0, 1, 1, 1, 0, 0),
	mission.NewStats(1, 0, 0, 1, 0, 4, 0, 0),
	mission.NewStats(0, 1, 0, 0, 1, 2, 0, 0),
	mission.NewStats(0, 1, 0, 0, 0, 5, 0, 0),
	mission.NewStats(0, 0, 0, 1, 1, 3, 0, 0),
	mission.NewStats(0, 0, 0, 1, 2, 0, 0, 0),
	mission.NewStats(0, 0, 0, 1, 0, 6, 0, 0),
}

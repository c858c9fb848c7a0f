package backend

import (
	"stattracker/mission"
	"stattracker/process"
)

const (
	hm2Base         process.ProcessMemoryAddress = 0x400000
	hm2FallbackName                              = "Hitman 2 SA"
	hm2WindowTitle                               = "Hitman2"
)

var (
	hm2Map   = chain{base: hm2Base + 0x2A6C5C, offsets: []process.ProcessMemorySize{0x98, 0xBC2}}
	hm2Timer = chain{base: hm2Base + 0x2A6C58, offsets: []process.ProcessMemorySize{0x118, 0xB38, 0x8, 0x1084, 0x24}}
	hm2Shots = chain{base: hm2Base + 0x3981C, offsets: []process.ProcessMemorySize{0x3CC, 0x11C7}}
)

// hm2LevelSlot is the position in the counter chains that takes the per-level displacement
const hm2LevelSlot = 1

// hm2Counters are the seven level dependent counters after shots fired, in mission.Stats order
var hm2Counters = [mission.StatCount - 1]chain{
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x220}}, // close encounters
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x208}}, // headshots
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x21C}}, // alerts
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x210}}, // enemies killed
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x20C}}, // enemies harmed
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x218}}, // innocents killed
	{base: hm2Base + 0x2A6C50, offsets: []process.ProcessMemorySize{0x28, 0, 0x214}}, // innocents harmed
}

// hm2LevelOffsets is indexed by Level.Index
var hm2LevelOffsets = [20]process.ProcessMemorySize{
	0x838, 0xB24, 0x8A0, 0x138, 0xB88, 0xBB8, 0xB48, 0xCE8, 0x136C, 0xAD0,
	0xF50, 0x8D4, 0x9EC, 0x400, 0x9EC, 0x644, 0xB08, 0x96C, 0xB00, 0x8,
}

var hm2Levels = map[string]Level{
	"C0-1\\": {Name: "The Gontranno Sanctuary"},
	"C1-1\\": {Name: "Anathema", Index: 0, Rated: true},
	"C2-1\\": {Name: "St. Petersburg Stakeout", Index: 1, Rated: true},
	"C2-2\\": {Name: "Kirov Park Meeting", Index: 2, Rated: true},
	"C2-3\\": {Name: "Tubeway Torpedo", Index: 3, Rated: true},
	"C2-4\\": {Name: "Invitation to a Party", Index: 4, Rated: true},
	"C3-1\\": {Name: "Tracking Hayamoto", Index: 5, Rated: true},
	"C3-2a":  {Name: "Hidden Valley", Index: 6, Rated: true},
	"C3-2b":  {Name: "At the Gates", Index: 7, Rated: true},
	"C3-3\\": {Name: "Shogun Showdown", Index: 8, Rated: true},
	"C4-1\\": {Name: "Basement Killing", Index: 9, Rated: true},
	"C4-2\\": {Name: "The Graveyard Shift", Index: 10, Rated: true},
	"C4-3\\": {Name: "The Jacuzzi Job", Index: 11, Rated: true},
	"C5-1\\": {Name: "Murder At The Bazaar", Index: 12, Rated: true},
	"C5-2\\": {Name: "The Motorcade Interception", Index: 13, Rated: true},
	"C5-3\\": {Name: "Tunnel Rat", Index: 14, Rated: true},
	"C6-1\\": {Name: "Temple City Ambush", Index: 15, Rated: true},
	"C6-2\\": {Name: "The Death of Hannelore", Index: 16, Rated: true},
	"C6-3\\": {Name: "Terminal Hospitality", Index: 17, Rated: true},
	"C7-1\\": {Name: "St. Petersburg Revisited", Index: 18, Rated: true},
	"C8-1\\": {Name: "Redemption at Gontranno", Index: 19, Rated: true},
}

// hm2Combinations are the counter allowances that still earn Silent Assassin
var hm2Combinations = []mission.Stats{
	mission.NewStats(0, 1, 0, 0, 1, 2, 0, 0),
	mission.NewStats(0, 1, 0, 0, 0, 5, 0, 0),
	mission.NewStats(0, 1, 0, 0, 0, 2, 0, 1),
	mission.NewStats(0, 0, 0, 1, 2, 0, 0, 0),
	mission.NewStats(0, 0, 0, 1, 1, 3, 0, 0),
	mission.NewStats(0, 0, 0, 1, 1, 0, 0, 1),
	mission.NewStats(0, 0, 0, 1, 0, 6, 0, 0),
	mission.NewStats(0, 0, 0, 1, 0, 3, 0, 1),
	mission.NewStats(0, 0, 0, 1, 0, 0, 1, 0),
	mission.NewStats(0, 0, 0, 1, 0, 0, 0, 2),
	mission.NewStats(0, 0, 0, 0, 1, 0, 0, 1),
	mission.NewStats(1, 1, 1, 0, 0, 2, 0, 0),
	mission.NewStats(1, 1, 0, 0, 1, 0, 0, 0),
	mission.NewStats(1, 1, 0, 0, 0, 3, 0, 0),
	mission.NewStats(1, 1, 0, 0, 0, 0, 0, 1),
	mission.NewStats(1, 0, 1, 1, 1, 0, 0, 0),
	mission.NewStats(1, 0, 1, 1, 0, 3, 0, 0),
	mission.NewStats(1, 0, 1, 1, 0, 0, 0, 1),
	mission.NewStats(1, 0, 0, 1, 1, 1, 0, 0),
	mission.NewStats(1, 0, 0, 1, 0, 4, 0, 0),
	mission.NewStats(1, 0, 0, 1, 0, 1, 0, 1),
	mission.NewStats(1, 0, 0, 0, 1, 1, 0, 0),
	mission.NewStats(2, 1, 1, 0, 0, 0, 0, 0),
	mission.NewStats(2, 1, 0, 0, 0, 1, 0, 0),
	mission.NewStats(2, 0, 2, 1, 0, 0, 0, 0),
	mission.NewStats(2, 0, 1, 1, 0, 1, 0, 0),
	mission.NewStats(3, 0, 0, 1, 0, 0, 0, 0),
}

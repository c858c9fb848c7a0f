// Package colormap holds the labelled color pairs used to show the Silent Assassin status
package colormap

import (
	"stattracker/coloransi"
)

// Map colors a rating: SilentAssassin when the run still qualifies, Failed otherwise
type Map struct {
	Label          string              `json:"label"`
	SilentAssassin coloransi.ColorCode `json:"-"`
	Failed         coloransi.ColorCode `json:"-"`
}

var all = []Map{
	{Label: "Green / Red", SilentAssassin: coloransi.RGB(0, 160, 0), Failed: coloransi.RGB(255, 0, 0)},
	{Label: "Darker Green / Red", SilentAssassin: coloransi.RGB(0, 100, 0), Failed: coloransi.RGB(139, 0, 0)},
	{Label: "Blue / Red", SilentAssassin: coloransi.RGB(0, 90, 180), Failed: coloransi.RGB(220, 50, 32)},
	{Label: "Blue / Orange", SilentAssassin: coloransi.RGB(12, 123, 220), Failed: coloransi.RGB(255, 194, 10)},
	{Label: "Blue / Brown", SilentAssassin: coloransi.RGB(0, 108, 209), Failed: coloransi.RGB(153, 79, 0)},
	{Label: "Mint / Khaki", SilentAssassin: coloransi.RGB(64, 176, 166), Failed: coloransi.RGB(225, 190, 106)},
}

// All returns every map, default first
func All() []Map {
	out := make([]Map, len(all))
	copy(out, all)
	return out
}

func Default() Map {
	return all[0]
}

// ByLabel finds a map by its exact label
func ByLabel(label string) (Map, bool) {
	for _, m := range all {
		if m.Label == label {
			return m, true
		}
	}
	return Map{}, false
}

// Labels lists the known labels in display order
func Labels() []string {
	out := make([]string, len(all))
	for i, m := range all {
		out[i] = m.Label
	}
	return out
}

func (m Map) RatingColor(silentAssassin bool) coloransi.ColorCode {
	if silentAssassin {
		return m.SilentAssassin
	}
	return m.Failed
}

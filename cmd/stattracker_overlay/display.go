package main

import (
	"io"
	"strings"

	"stattracker/coloransi"
	"stattracker/colormap"
	"stattracker/config"
	"stattracker/overlay"
)

// display is the overlay state built up from commands
type display struct {
	cmap colormap.Map
	size float32
	data overlay.Command
}

func newDisplay() *display {
	return &display{
		cmap: colormap.Default(),
		size: config.DefaultOverlaySize,
		data: overlay.DataCommand(0, true),
	}
}

// Apply updates the display. Unknown color maps and out of range sizes are ignored.
func (d *display) Apply(cmd overlay.Command) {
	switch cmd.Kind {
	case overlay.Data:
		d.data = cmd
	case overlay.Size:
		if cmd.Size >= config.MinOverlaySize && cmd.Size <= config.MaxOverlaySize {
			d.size = cmd.Size
		}
	case overlay.ColorMap:
		if m, ok := colormap.ByLabel(cmd.ColorMap); ok {
			d.cmap = m
		}
	}
}

// Render draws the clock padded by the current size
func (d *display) Render() string {
	pad := strings.Repeat(" ", int(d.size))
	return coloransi.Badge(d.cmap.RatingColor(d.data.SilentAssassin), pad+d.data.Clock()+pad)
}

// Listen applies every command from r and hands each redraw to draw
func (d *display) Listen(r io.Reader, draw func(string)) error {
	return overlay.Listen(r, func(cmd overlay.Command) {
		d.Apply(cmd)
		draw(d.Render())
	})
}

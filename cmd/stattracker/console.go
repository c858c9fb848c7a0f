package main

import (
	"fmt"

	"stattracker/coloransi"
	"stattracker/colormap"
	"stattracker/tracker"
)

// console prints a line whenever the session, mission or rating changes.
// The clock alone never triggers a line.
type console struct {
	cmap colormap.Map
	last string
}

func newConsole(cmap colormap.Map) *console {
	return &console{cmap: cmap}
}

func (c *console) Publish(s tracker.Snapshot) {
	key := c.key(s)
	if key == c.last {
		return
	}
	c.last = key
	fmt.Println(c.format(s))
}

func (c *console) key(s tracker.Snapshot) string {
	if s.State != tracker.Running {
		return string(s.State)
	}
	key := fmt.Sprintf("%s/%s/%v", s.SessionID, s.Data.Mission, s.Data.Running())
	if s.Data.Rating != nil {
		key += fmt.Sprintf("/%v/%v", s.Data.Rating.SilentAssassin, s.Data.Rating.Stats)
	}
	return key
}

func (c *console) format(s tracker.Snapshot) string {
	if s.State != tracker.Running {
		return "Waiting for hitman2.exe or HitmanContracts.exe..."
	}

	head := fmt.Sprintf("[%s %d] %s %s", s.Game, s.PID, s.Data.Clock(), s.Data.Mission)
	if s.Data.Rating == nil {
		return head
	}

	label := " SA "
	if !s.Data.Rating.SilentAssassin {
		label = " NO SA "
	}
	badge := coloransi.Badge(c.cmap.RatingColor(s.Data.Rating.SilentAssassin), label)
	return fmt.Sprintf("%s %s %s", head, badge, s.Data.Rating.Stats)
}

// Package window looks up the on-screen bounds of a game window by title
package window

import "encoding/json"

// Rect is a window rectangle in screen pixels
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

func (r Rect) Width() int32 {
	return r.Right - r.Left
}

func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// CenterX is the horizontal midpoint, where the overlay anchors itself
func (r Rect) CenterX() int32 {
	return r.Left + r.Width()/2
}

// Finder returns the bounds of the top-level window with the given title
type Finder interface {
	Find(title string) (Rect, bool)
}

// FinderFunc adapts a function to Finder
type FinderFunc func(title string) (Rect, bool)

func (f FinderFunc) Find(title string) (Rect, bool) {
	return f(title)
}

// MarshalJSON adds the size and the overlay anchor to the four edges
func (r Rect) MarshalJSON() ([]byte, error) {
	type plain Rect
	return json.Marshal(struct {
		plain
		Width   int32 `json:"width"`
		Height  int32 `json:"height"`
		CenterX int32 `json:"center_x"`
	}{plain(r), r.Width(), r.Height(), r.CenterX()})
}

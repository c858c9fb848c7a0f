// Package overlay speaks the line protocol that drives the overlay companion
// over its standard input:
//
//	data <minutes> <seconds> <true|false>
//	size <float>
//	cmap <label>
//
// Lines that do not parse are skipped, never reported.
package overlay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stattracker/mission"
)

type Kind int

const (
	Skip Kind = iota
	Data
	Size
	ColorMap
)

func (k Kind) String() string {
	switch k {
	case Data:
		return "data"
	case Size:
		return "size"
	case ColorMap:
		return "cmap"
	default:
		return "skip"
	}
}

// Command is one decoded line. Only the fields of its Kind are set.
type Command struct {
	Kind           Kind
	Minutes        string
	Seconds        string
	SilentAssassin bool
	Size           float32
	ColorMap       string
}

// DataCommand shows the mission clock as minutes and seconds
func DataCommand(ticks uint32, silentAssassin bool) Command {
	return Command{
		Kind:           Data,
		Minutes:        fmt.Sprintf("%02d", ticks/3600),
		Seconds:        fmt.Sprintf("%02d", (ticks/60)%60),
		SilentAssassin: silentAssassin,
	}
}

// DataFor builds the data command for a poll. A mission without a rating
// shows as still qualifying.
func DataFor(g mission.GameData) Command {
	sa := true
	if g.Rating != nil {
		sa = g.Rating.SilentAssassin
	}
	return DataCommand(g.Ticks, sa)
}

func SizeCommand(size float32) Command {
	return Command{Kind: Size, Size: size}
}

func ColorMapCommand(label string) Command {
	return Command{Kind: ColorMap, ColorMap: label}
}

// Encode formats c as a newline terminated line. Skip encodes to "".
func (c Command) Encode() string {
	switch c.Kind {
	case Data:
		return fmt.Sprintf("data %s %s %t\n", c.Minutes, c.Seconds, c.SilentAssassin)
	case Size:
		return "size " + strconv.FormatFloat(float64(c.Size), 'g', -1, 32) + "\n"
	case ColorMap:
		return "cmap " + c.ColorMap + "\n"
	}
	return ""
}

// Clock returns the data command's time as MM:SS
func (c Command) Clock() string {
	return c.Minutes + ":" + c.Seconds
}

// Parse decodes one line
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}
	}

	switch fields[0] {
	case "data":
		if len(fields) < 4 {
			return Command{}
		}
		return Command{
			Kind:           Data,
			Minutes:        fields[1],
			Seconds:        fields[2],
			SilentAssassin: fields[3] == "true",
		}
	case "size":
		if len(fields) < 2 {
			return Command{}
		}
		size, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return Command{}
		}
		return SizeCommand(float32(size))
	case "cmap":
		// labels contain spaces, so the label is the rest of the line
		label := strings.Join(fields[1:], " ")
		if label == "" {
			return Command{}
		}
		return ColorMapCommand(label)
	}
	return Command{}
}

// Listen decodes r line by line and calls fn for every command that is not Skip.
// It returns when r is exhausted.
func Listen(r io.Reader, fn func(Command)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if cmd := Parse(scanner.Text()); cmd.Kind != Skip {
			fn(cmd)
		}
	}
	return scanner.Err()
}

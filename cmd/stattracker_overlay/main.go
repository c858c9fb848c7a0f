// stattracker_overlay is a terminal stand-in for the on-screen overlay. It reads
// overlay commands on stdin and redraws the mission clock as a colored badge.
package main

import (
	"fmt"
	"os"
)

func main() {
	d := newDisplay()
	fmt.Print(d.Render())

	err := d.Listen(os.Stdin, func(line string) {
		fmt.Print("\r\033[K" + line)
	})
	fmt.Println()
	if err != nil {
		fmt.Printf("Error reading commands: %v\n", err)
		os.Exit(1)
	}
}

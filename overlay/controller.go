package overlay

import (
	"fmt"
	"io"
	"os/exec"
	"sync"

	"stattracker/mission"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Controller feeds commands to an overlay. Write errors are logged and
// otherwise ignored; a dead overlay never stops tracking.
type Controller struct {
	w   io.Writer
	cmd *exec.Cmd
	log *logger.Logger

	mu       sync.Mutex
	lastData Command
	sentData bool
}

// NewController writes commands to w
func NewController(w io.Writer) *Controller {
	return &Controller{
		w:   w,
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorPurple, "overlay")),
	}
}

// Launch starts the overlay program with a piped stdin and sends the initial
// size and color map
func Launch(path string, size float32, colorMap string) (*Controller, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("overlay stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("overlay program not started: %w", err)
	}

	c := NewController(stdin)
	c.cmd = cmd
	c.log.Infoln("Overlay started:", path, "pid", cmd.Process.Pid)

	c.Send(SizeCommand(size))
	c.Send(ColorMapCommand(colorMap))
	return c, nil
}

// Send writes one command
func (c *Controller) Send(cmd Command) {
	line := cmd.Encode()
	if line == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.w, line); err != nil {
		c.log.Debugln("Overlay write failed:", err)
	}
}

// Update sends the clock and rating for g when they differ from the last sent
func (c *Controller) Update(g mission.GameData) {
	cmd := DataFor(g)

	c.mu.Lock()
	changed := !c.sentData || cmd != c.lastData
	c.lastData, c.sentData = cmd, true
	c.mu.Unlock()

	if changed {
		c.Send(cmd)
	}
}

// Close stops the overlay program, if one was launched
func (c *Controller) Close() error {
	if closer, ok := c.w.(io.Closer); ok {
		_ = closer.Close()
	}
	if c.cmd == nil || c.cmd.Process == nil {
		return nil
	}
	if err := c.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("overlay kill: %w", err)
	}
	_ = c.cmd.Wait()
	c.log.Infoln("Overlay stopped")
	return nil
}

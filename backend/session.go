package backend

import (
	"fmt"

	"stattracker/mission"
	"stattracker/process"
	"stattracker/window"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// session is the state both backends share: the open process, its window and logger
type session struct {
	game    Game
	title   string
	proc    process.Process
	windows window.Finder
	log     *logger.Logger

	ended     bool
	qualified bool // last rated poll still qualified
}

func newSession(game Game, title string, proc process.Process, windows window.Finder) session {
	if windows == nil {
		windows = window.New()
	}
	s := session{
		game:    game,
		title:   title,
		proc:    proc,
		windows: windows,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("%s-%d", game, proc.GetPID()))),
	}
	sessionsStarted.WithLabelValues(string(game)).Inc()
	s.log.Infoln("Session started")
	return s
}

func (s *session) Game() Game {
	return s.game
}

func (s *session) PID() process.ProcessID {
	return s.proc.GetPID()
}

func (s *session) GameWindow() (window.Rect, bool) {
	return s.windows.Find(s.title)
}

func (s *session) Close() error {
	return s.proc.Close()
}

// end records the read failure that ended the session
func (s *session) end(what string, err error) (mission.GameData, bool) {
	pollsTotal.WithLabelValues(string(s.game), outcomeSessionEnd).Inc()
	if !s.ended {
		s.ended = true
		s.log.Infoln("Session ended:", what, err)
	}
	return mission.GameData{}, false
}

func (s *session) outcome(outcome string) {
	pollsTotal.WithLabelValues(string(s.game), outcome).Inc()
}

// rated classifies stats and counts the moment a run stops qualifying
func (s *session) rated(name string, ticks uint32, stats mission.Stats, table []mission.Stats) (mission.GameData, bool) {
	rating := mission.Classify(stats, table)
	if s.qualified && !rating.SilentAssassin {
		silentAssassinLost.WithLabelValues(string(s.game)).Inc()
		s.log.Infoln("Silent Assassin lost on", name, "at", stats)
	}
	s.qualified = rating.SilentAssassin
	s.outcome(outcomeRated)
	return mission.GameData{Mission: name, Ticks: ticks, Rating: &rating}, true
}

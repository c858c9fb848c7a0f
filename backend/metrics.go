package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Poll outcomes
const (
	outcomeSessionEnd   = "session_end"
	outcomeUnknownLevel = "unknown_level"
	outcomeIdle         = "idle"
	outcomeUnrated      = "unrated"
	outcomeRated        = "rated"
)

var (
	sessionsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stattracker_sessions_started_total",
		Help: "Game sessions attached to, by game",
	}, []string{"game"})

	pollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stattracker_polls_total",
		Help: "Polls by game and outcome",
	}, []string{"game", "outcome"})

	counterReadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stattracker_counter_read_failures_total",
		Help: "Failed counter reads by game and counter",
	}, []string{"game", "counter"})

	shotsBackupUsed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stattracker_shots_backup_used_total",
		Help: "Hitman 2 polls that reported the cached shots fired value",
	})

	silentAssassinLost = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stattracker_silent_assassin_lost_total",
		Help: "Rated missions where the rating stopped qualifying",
	}, []string{"game"})
)

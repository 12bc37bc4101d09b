package game

import (
	"time"

	"github.com/Garsondee/Fireworks/internal/config"
)

// Task labels used on the show's queue.
const (
	taskAutoLaunch     = "auto-launch"
	taskExtraRocket    = "extra-rocket"
	taskSecondaryBurst = "secondary-burst"
)

// LaunchScheduler fires rockets on a fixed cadence derived from the
// intensity setting. At most one of its timers is pending at a time.
type LaunchScheduler struct {
	sh       *Show
	timer    TaskID
	interval time.Duration
	double   bool
	ticks    int
}

func newLaunchScheduler(sh *Show) *LaunchScheduler {
	return &LaunchScheduler{sh: sh}
}

// Arm cancels the current timer and, if auto-launch is on, starts a new one
// at the interval for s.Intensity.
func (ls *LaunchScheduler) Arm(s config.Settings) {
	ls.Stop()
	if !s.AutoLaunch {
		return
	}
	ls.interval = s.Intensity.LaunchInterval()
	ls.double = s.Intensity.DoubleLaunch()
	ls.schedule(ls.sh.queue.Now() + ls.interval)
	ls.sh.record("scheduler", "arm", s.Intensity.String(), ls.interval.Seconds())
}

// Stop cancels the pending timer, if any. A queued extra rocket still fires.
func (ls *LaunchScheduler) Stop() {
	if ls.timer == 0 {
		return
	}
	ls.sh.queue.Cancel(ls.timer)
	ls.timer = 0
	ls.interval = 0
	ls.sh.record("scheduler", "disarm", "", 0)
}

// Armed reports whether a timer is pending.
func (ls *LaunchScheduler) Armed() bool {
	return ls.timer != 0 && ls.sh.queue.IsPending(ls.timer)
}

// Interval returns the active cadence, or zero when disarmed.
func (ls *LaunchScheduler) Interval() time.Duration { return ls.interval }

// Ticks returns how many times the timer has fired.
func (ls *LaunchScheduler) Ticks() int { return ls.ticks }

func (ls *LaunchScheduler) schedule(due time.Duration) {
	ls.timer = ls.sh.queue.ScheduleAt(taskAutoLaunch, due, func() { ls.fire(due) })
}

// fire runs one tick. The next tick is due one interval after this one was,
// not after it ran, so the cadence does not drift.
func (ls *LaunchScheduler) fire(due time.Duration) {
	ls.ticks++
	ls.schedule(due + ls.interval)
	if ls.sh.paused {
		ls.sh.record("scheduler", "tick", "paused", float64(ls.ticks))
		return
	}
	ls.sh.record("scheduler", "tick", "launch", float64(ls.ticks))
	ls.sh.launch(ls.sh.randomX(), "auto")
	if ls.double {
		ls.sh.queue.Schedule(taskExtraRocket, ls.sh.tuning.ExtraRocketDelay, func() {
			ls.sh.launch(ls.sh.randomX(), "extra")
		})
	}
}

package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded show event.
type SimLogEntry struct {
	Frame    int
	Category string  // launch, rocket, show, settings, scheduler
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] rocket    detonate         golden #ffd700 x=100 y=212
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-9s %-16s %s", e.Frame, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless run.
// Unlike LaunchLog (UI ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is false, scheduler bookkeeping
// events are dropped.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Record implements EventSink.
func (sl *SimLog) Record(frame int, category, key, value string, num float64) {
	if !sl.verbose && category == "scheduler" {
		return
	}
	sl.Add(frame, category, key, value, num)
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, category, key, value string, num float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   num,
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterFrameRange returns entries within [from, to] inclusive.
func (sl *SimLog) FilterFrameRange(from, to int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Frame >= from && e.Frame <= to {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// SumCategory adds up NumVal over entries matching category and key.
func (sl *SimLog) SumCategory(category, key string) float64 {
	var sum float64
	for _, e := range sl.Filter(category, key) {
		sum += e.NumVal
	}
	return sum
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the show state.
func (sl *SimLog) Summary(sh *Show) string {
	var sb strings.Builder
	st := sh.Stats()
	s := sh.Settings()
	fmt.Fprintf(&sb, "--- Summary at F=%03d (t=%v) ---\n", sh.Frame(), sh.Now())
	fmt.Fprintf(&sb, "settings: %s\n", s.FlagLine())
	fmt.Fprintf(&sb, "launched=%d detonations=%d secondary=%d hearts=%d\n",
		st.Launched, st.Detonations, st.SecondaryBursts, st.HeartBursts)
	fmt.Fprintf(&sb, "live: rockets=%d particles=%d peak=%d spawned=%d reaped=%d\n",
		len(sh.Rockets()), len(sh.Particles()), st.PeakParticles, st.ParticlesSpawned, st.RocketsReaped)
	if sh.Paused() {
		sb.WriteString("state: paused\n")
	} else {
		sb.WriteString("state: running\n")
	}
	return sb.String()
}

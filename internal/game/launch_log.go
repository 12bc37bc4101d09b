package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 40
	logLineHeight = 14
)

// LaunchEntry is a single line in the launch log.
type LaunchEntry struct {
	Frame    int
	Category string
	Key      string
	Message  string
}

// LaunchLog is a ring buffer of show events rendered on-screen.
type LaunchLog struct {
	entries []LaunchEntry
	head    int
	count   int
}

// NewLaunchLog creates a launch log with a fixed capacity.
func NewLaunchLog() *LaunchLog {
	return &LaunchLog{
		entries: make([]LaunchEntry, logMaxEntries),
	}
}

// Record implements EventSink.
func (ll *LaunchLog) Record(frame int, category, key, value string, _ float64) {
	if category == "scheduler" {
		return
	}
	ll.Add(LaunchEntry{Frame: frame, Category: category, Key: key, Message: value})
}

// Add appends an entry, overwriting the oldest when full.
func (ll *LaunchLog) Add(e LaunchEntry) {
	ll.entries[ll.head] = e
	ll.head = (ll.head + 1) % logMaxEntries
	if ll.count < logMaxEntries {
		ll.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (ll *LaunchLog) Recent() []LaunchEntry {
	result := make([]LaunchEntry, ll.count)
	for i := 0; i < ll.count; i++ {
		idx := (ll.head - ll.count + i + logMaxEntries) % logMaxEntries
		result[i] = ll.entries[idx]
	}
	return result
}

// Len returns the number of stored entries.
func (ll *LaunchLog) Len() int { return ll.count }

// categoryColor picks the marker colour for an entry.
func categoryColor(cat string) color.RGBA {
	switch cat {
	case "launch":
		return color.RGBA{R: 255, G: 170, B: 60, A: 255}
	case "rocket":
		return color.RGBA{R: 255, G: 80, B: 140, A: 255}
	case "settings":
		return color.RGBA{R: 90, G: 170, B: 255, A: 255}
	}
	return color.RGBA{R: 160, G: 160, B: 160, A: 255}
}

// Draw renders the log panel on the right side of the screen.
func (ll *LaunchLog) Draw(screen *ebiten.Image, hud *hudText, panelX, panelH int) {
	// Panel background.
	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 6, G: 6, B: 14, A: 200}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 50, B: 90, A: 255}, false)

	vector.DrawFilledRect(screen, float32(panelX), 0, float32(logPanelWidth), 18, color.RGBA{R: 20, G: 16, B: 40, A: 255}, false)
	hud.draw(screen, "LAUNCH LOG", panelX+8, 3, color.White)

	entries := ll.Recent()

	// Newest at the bottom.
	maxVisible := max((panelH-24)/logLineHeight, 0)
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 22
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.DrawFilledRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 30, G: 24, B: 50, A: 160}, false)
		}
		vector.DrawFilledRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)

		textCol := color.RGBA{R: 150, G: 150, B: 160, A: 255}
		if isRecent {
			textCol = color.RGBA{R: 240, G: 240, B: 250, A: 255}
		}
		line := fmt.Sprintf("%5d %s %s", e.Frame, e.Key, e.Message)
		hud.draw(screen, line, panelX+12, y+1, textCol)
		y += logLineHeight
	}
}

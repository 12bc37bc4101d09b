package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

// ErrUnsupportedAudio is returned for files beep has no decoder for.
var ErrUnsupportedAudio = errors.New("unsupported audio file")

// Music is a looping background track. It starts paused.
type Music struct {
	path     string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// LoadMusic decodes a wav, mp3 or flac file and queues it on the speaker,
// paused. Any previously playing track is cleared.
func LoadMusic(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAudio, path)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	speaker.Clear()
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return nil, fmt.Errorf("speaker: %w", err)
	}

	m := &Music{
		path:     path,
		file:     f,
		streamer: streamer,
		format:   format,
		ctrl:     &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true},
	}
	speaker.Play(m.ctrl)
	return m, nil
}

// Path returns the file the track was loaded from.
func (m *Music) Path() string { return m.path }

// Play resumes the track.
func (m *Music) Play() { m.setPaused(false) }

// Pause stops the track where it is.
func (m *Music) Pause() { m.setPaused(true) }

// Toggle flips play/pause and reports whether the track is now playing.
func (m *Music) Toggle() bool {
	speaker.Lock()
	m.ctrl.Paused = !m.ctrl.Paused
	playing := !m.ctrl.Paused
	speaker.Unlock()
	return playing
}

// Playing reports whether the track is audible.
func (m *Music) Playing() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !m.ctrl.Paused
}

func (m *Music) setPaused(p bool) {
	speaker.Lock()
	m.ctrl.Paused = p
	speaker.Unlock()
}

// Close stops playback and releases the file.
func (m *Music) Close() error {
	speaker.Clear()
	err := m.streamer.Close()
	_ = m.file.Close()
	return err
}

// PickMusicFile opens a native file dialog. A cancelled dialog returns "".
func PickMusicFile() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

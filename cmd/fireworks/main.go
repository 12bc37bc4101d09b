package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/Garsondee/Fireworks/internal/config"
	"github.com/Garsondee/Fireworks/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	settings, err := config.FromEnv(config.Default())
	if err != nil {
		log.Fatal(err)
	}
	tuning := config.DefaultTuning()

	var (
		musicPath string
		pickMusic bool
		width     int
		height    int
	)
	config.RegisterFlags(flag.CommandLine, &settings)
	config.RegisterTuningFlags(flag.CommandLine, &tuning)
	flag.StringVar(&musicPath, "music", config.GetEnv(config.EnvMusic, ""), "background music file (wav, mp3, flac)")
	flag.BoolVar(&pickMusic, "pick-music", false, "choose the background music with a file dialog")
	flag.IntVar(&width, "width", 1280, "initial window width")
	flag.IntVar(&height, "height", 720, "initial window height")
	flag.Parse()

	if err := validateWindow(width, height); err != nil {
		log.Fatal(err)
	}
	if pickMusic {
		musicPath = chooseMusic(musicPath, game.PickMusicFile)
	}

	var music *game.Music
	if musicPath != "" {
		if music, err = game.LoadMusic(musicPath); err != nil {
			log.Printf("music disabled: %v", err)
		} else {
			music.Play()
		}
	}

	g, err := game.New(game.Options{
		Settings: settings,
		Tuning:   tuning,
		Width:    width,
		Height:   height,
		Music:    music,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Print(err)
	}
}

func validateWindow(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("-width and -height must be > 0, got %dx%d", width, height)
	}
	return nil
}

// chooseMusic asks pick for a track and keeps current when the dialog is
// cancelled or fails.
func chooseMusic(current string, pick func() (string, error)) string {
	path, err := pick()
	if err != nil {
		log.Printf("music dialog: %v", err)
		return current
	}
	if path == "" {
		return current
	}
	return path
}

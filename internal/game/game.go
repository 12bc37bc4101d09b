package game

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Fireworks/internal/config"
)

const (
	sizeStep  = 1
	speedStep = 0.25
)

// Options configure a windowed Game.
type Options struct {
	Settings config.Settings
	Tuning   config.Tuning
	Width    int
	Height   int
	// Music is optional; nil disables the music keys except O.
	Music *Music
}

// Game adapts a Show to ebiten: input, the persistent canvas the show paints
// on, and the overlays drawn over it.
type Game struct {
	width  int
	height int

	show      *Show
	launchLog *LaunchLog
	stars     *StarField
	hud       *hudText
	music     *Music

	// The show paints onto canvas every tick; it is never cleared, which is
	// what makes the fade wash leave trails.
	canvas        *ebiten.Image
	canvasSurface *ebitenSurface
	screenSurface *ebitenSurface

	showHUD       bool
	status        string
	prevKeys      map[ebiten.Key]bool
	touchIDs      []ebiten.TouchID
	focused       bool
	resumeOnFocus bool
}

// New builds a game around a fresh show.
func New(opts Options) (*Game, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	launchLog := NewLaunchLog()
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- cosmetic only
	show, err := NewShow(opts.Settings,
		WithRand(rng),
		WithTuning(opts.Tuning),
		WithEventSink(launchLog),
		WithViewport(opts.Width, opts.Height),
	)
	if err != nil {
		return nil, err
	}
	g := &Game{
		width:     opts.Width,
		height:    opts.Height,
		show:      show,
		launchLog: launchLog,
		stars:     NewStarField(rng, opts.Width),
		hud:       newHUDText(),
		music:     opts.Music,
		showHUD:   true,
		prevKeys:  make(map[ebiten.Key]bool),
		focused:   true,
	}
	g.ensureCanvas()
	return g, nil
}

// Show returns the simulation driven by the game.
func (g *Game) Show() *Show { return g.show }

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.syncFocus()

	g.show.Advance(g.show.Tuning().FrameTime)
	g.ensureCanvas()
	if g.canvasSurface == nil {
		return g.show.RenderFrame(nil, g.width, g.height)
	}
	return g.show.RenderFrame(g.canvasSurface, g.width, g.height)
}

// ensureCanvas (re)creates the canvas when the window size changes. Like a
// resized HTML canvas, the old contents are dropped.
func (g *Game) ensureCanvas() {
	if g.width <= 0 || g.height <= 0 {
		return
	}
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.canvasSurface = newEbitenSurface(g.canvas)
}

// handleInput processes pointer launches and edge-triggered key presses.
func (g *Game) handleInput() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, _ := ebiten.CursorPosition()
		g.show.Launch(float64(mx))
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, _ := ebiten.TouchPosition(id)
		g.show.Launch(float64(tx))
	}

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(keys ...ebiten.Key) bool {
		hit := false
		for _, k := range keys {
			currentKeys[k] = ebiten.IsKeyPressed(k)
			if currentKeys[k] && !g.prevKeys[k] {
				hit = true
			}
		}
		return hit
	}
	defer func() { g.prevKeys = currentKeys }()

	if pressed(ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}
	if pressed(ebiten.KeySpace, ebiten.KeyP) {
		g.show.TogglePause()
	}
	if pressed(ebiten.KeyL) {
		g.show.LaunchRandom()
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// Settings panel: every change goes through ApplySettings.
	s := g.show.Settings()
	next := s
	themeKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	for i, k := range themeKeys {
		if pressed(k) {
			next.Color = config.Themes[i]
		}
	}
	if pressed(ebiten.KeyI) {
		next.Intensity = s.Intensity.Next()
	}
	if pressed(ebiten.KeyA) {
		next.AutoLaunch = !s.AutoLaunch
	}
	if pressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		next.Size += sizeStep
	}
	if pressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		next.Size -= sizeStep
	}
	if pressed(ebiten.KeyBracketRight) {
		next.Speed += speedStep
	}
	if pressed(ebiten.KeyBracketLeft) {
		next.Speed -= speedStep
	}
	if next != s {
		if err := g.show.ApplySettings(next); err != nil {
			g.setStatus("settings rejected: %v", err)
		} else {
			g.setStatus("")
		}
	}

	if pressed(ebiten.KeyC) {
		g.copySettings(clipboard.WriteAll)
	}
	if pressed(ebiten.KeyM) {
		g.toggleMusic()
	}
	if pressed(ebiten.KeyO) {
		g.openMusic()
	}
	return nil
}

// copySettings writes the active settings as a flag line.
func (g *Game) copySettings(write func(string) error) {
	line := g.show.Settings().FlagLine()
	if err := write(line); err != nil {
		log.Printf("clipboard: %v", err)
		g.setStatus("clipboard unavailable: %v", err)
		return
	}
	g.setStatus("copied: %s", line)
}

func (g *Game) setStatus(format string, args ...any) {
	if format == "" {
		g.status = ""
		return
	}
	g.status = fmt.Sprintf(format, args...)
}

func (g *Game) toggleMusic() {
	if g.music == nil {
		g.setStatus("no music loaded (press O)")
		return
	}
	if g.music.Toggle() {
		g.setStatus("music on")
	} else {
		g.setStatus("music off")
	}
}

// openMusic swaps the background track for one picked from a file dialog.
func (g *Game) openMusic() {
	path, err := PickMusicFile()
	if err != nil {
		log.Printf("music dialog: %v", err)
		g.setStatus("music dialog failed: %v", err)
		return
	}
	if path == "" {
		return
	}
	if g.music != nil {
		_ = g.music.Close()
		g.music = nil
	}
	m, err := LoadMusic(path)
	if err != nil {
		log.Printf("music: %v", err)
		g.setStatus("music: %v", err)
		return
	}
	g.music = m
	m.Play()
	g.setStatus("music on")
}

// syncFocus pauses music while the window is in the background and resumes
// it on return if it was playing.
func (g *Game) syncFocus() {
	focused := ebiten.IsFocused()
	if focused == g.focused {
		return
	}
	g.focused = focused
	if g.music == nil {
		return
	}
	if !focused {
		g.resumeOnFocus = g.music.Playing()
		g.music.Pause()
		return
	}
	if g.resumeOnFocus {
		g.music.Play()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.screenSurface == nil || g.screenSurface.dst != screen {
		g.screenSurface = newEbitenSurface(screen)
	}
	g.stars.Draw(g.screenSurface, float64(g.width), float64(g.height), g.show.Now())

	// The canvas is mostly black wash; adding it keeps the stars visible.
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(g.canvas, &op)

	if g.showHUD {
		g.drawHUD(screen)
		if g.width > logPanelWidth*2 {
			g.launchLog.Draw(screen, g.hud, g.width-logPanelWidth, g.height)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Close releases the music track, if any.
func (g *Game) Close() error {
	if g.music == nil {
		return nil
	}
	return g.music.Close()
}

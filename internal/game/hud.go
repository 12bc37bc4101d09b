package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Fireworks/internal/config"
)

// hudText draws HUD strings with the 7x13 bitmap face.
type hudText struct {
	face text.Face
}

func newHUDText() *hudText {
	return &hudText{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *hudText) draw(dst *ebiten.Image, s string, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, h.face, op)
}

var hudKeys = []string{
	"click/tap launch   L random   P/Space pause",
	"1-5 theme   I intensity   A auto   +/- size   [/] speed",
	"M music   O open music   C copy settings   H hide   Esc quit",
}

func settingsLine(s config.Settings) string {
	return fmt.Sprintf("theme %s   intensity %s   size %d   speed %s   auto %t",
		s.Color, s.Intensity, s.Size, strconv.FormatFloat(s.Speed, 'g', -1, 64), s.AutoLaunch)
}

// drawHUD renders the settings line, key legend and status message.
func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.show.Settings()
	st := g.show.Stats()

	lines := []string{
		settingsLine(s),
		fmt.Sprintf("rockets %d   particles %d   launched %d   hearts %d",
			len(g.show.Rockets()), len(g.show.Particles()), st.Launched, st.HeartBursts),
	}
	lines = append(lines, hudKeys...)
	if g.music != nil {
		state := "paused"
		if g.music.Playing() {
			state = "playing"
		}
		lines = append(lines, fmt.Sprintf("music %s (%s)", state, g.music.Path()))
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}

	h := len(lines)*logLineHeight + 8
	vector.DrawFilledRect(screen, 6, 6, 430, float32(h), color.RGBA{R: 0, G: 0, B: 0, A: 140}, false)
	for i, l := range lines {
		g.hud.draw(screen, l, 12, 10+i*logLineHeight, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}

	if g.show.Paused() {
		g.hud.draw(screen, "PAUSED", g.width/2-21, g.height/2-6, color.White)
	}
}

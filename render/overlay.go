package render

import (
	"strconv"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
)

// overlayFor returns the modal text for the frame's state, nil while running
func overlayFor(f engine.Frame) *core.OverlayContent {
	switch f.State {
	case engine.StateIdle:
		c := &core.OverlayContent{Title: constants.TextIdle}
		if f.HighScore > 0 {
			c.Items = append(c.Items, core.OverlayCard{Entries: []core.CardEntry{
				{Key: "Best", Value: strconv.Itoa(f.HighScore)},
			}})
		}
		return c
	case engine.StatePaused:
		return &core.OverlayContent{
			Title: constants.TextPaused,
			Items: []core.OverlayItem{core.OverlayLine{Text: "SPACE: resume"}},
		}
	case engine.StateOver:
		c := &core.OverlayContent{
			Title: constants.TextGameOver,
			Items: []core.OverlayItem{core.OverlayCard{Entries: []core.CardEntry{
				{Key: "Score", Value: strconv.Itoa(f.Score)},
			}}},
		}
		if f.NewHigh {
			c.Items = append(c.Items, core.OverlayLine{Text: constants.TextNewHigh, Highlight: true})
		}
		c.Items = append(c.Items, core.OverlayLine{Text: constants.TextRestartHint})
		return c
	}
	return nil
}

// drawOverlay centers a padded box of content lines within area
func drawOverlay(buf *RenderBuffer, area core.Area, content *core.OverlayContent) {
	lines := content.Lines()
	if len(lines) == 0 || area.Empty() {
		return
	}

	w := min(content.Width()+4, area.Width)
	h := min(len(lines)+2, area.Height)
	box := core.Area{
		X:      area.X + (area.Width-w)/2,
		Y:      area.Y + (area.Height-h)/2,
		Width:  w,
		Height: h,
	}
	buf.FillBg(box, RgbOverlayBg)

	for i, line := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom() {
			break
		}
		fg := RgbOverlayText
		switch {
		case i == 0 && content.Title != "":
			fg = RgbOverlayTitle
		case line.Highlight:
			fg = RgbOverlayAccent
		}
		buf.DrawTextCentered(box.X, y, box.Width, line.Text, fg, line.Highlight)
	}
}

package render

import (
	"strconv"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/core"
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/input"
	"github.com/lixenwraith/snake-arcade/layout"
)

var buttonLabels = map[engine.Direction]string{
	engine.Up:    "▲",
	engine.Down:  "▼",
	engine.Left:  "◀",
	engine.Right: "▶",
}

func stateColor(s engine.State) core.RGB {
	switch s {
	case engine.StateRunning:
		return RgbStateRunning
	case engine.StatePaused:
		return RgbStatePaused
	case engine.StateOver:
		return RgbStateOver
	default:
		return RgbStateIdle
	}
}

func drawPanel(buf *RenderBuffer, l layout.Layout, f engine.Frame, fb input.DragFeedback, muted bool) {
	if l.Panel.Empty() {
		drawStatusLine(buf, l, f)
		return
	}
	p := l.Panel

	buf.DrawTextCentered(p.X, p.Y, p.Width, "SNAKE", RgbOverlayTitle, true)

	sound := "on"
	if muted {
		sound = "off"
	}
	rows := []struct {
		key, value string
		fg         core.RGB
	}{
		{"Score", strconv.Itoa(f.Score), RgbPanelValue},
		{"Best", strconv.Itoa(f.HighScore), RgbPanelValue},
		{"State", f.State.String(), stateColor(f.State)},
		{"Sound", sound, RgbPanelValue},
	}
	for i, row := range rows {
		y := l.ScoreRow + i
		if !l.FitsPanel(y) {
			return
		}
		x := buf.DrawText(p.X+2, y, p.Right(), row.key+":", RgbPanelText, false)
		buf.DrawText(x+1, y, p.Right(), row.value, row.fg, false)
	}

	for _, b := range l.Buttons {
		if !l.FitsPanel(b.Area.Y) {
			continue
		}
		bg := RgbButtonBg
		if f.Moving && f.Direction == b.Dir {
			bg = RgbButtonHotBg
		}
		buf.FillBg(b.Area, bg)
		buf.DrawTextCentered(b.Area.X, b.Area.Y, b.Area.Width, buttonLabels[b.Dir], RgbButtonText, true)
	}

	drawDragPad(buf, l, fb)

	if l.FitsPanel(l.HelpRow) {
		buf.DrawTextCentered(p.X, l.HelpRow, p.Width, constants.TextKeyHelp, RgbPanelText, false)
	}
}

// drawDragPad paints the pad and its knob displaced by the live drag travel
func drawDragPad(buf *RenderBuffer, l layout.Layout, fb input.DragFeedback) {
	pad := l.DragPad
	if pad.Empty() || !l.FitsPanel(pad.Bottom()-1) {
		return
	}
	buf.FillBg(pad, RgbPadBg)

	kx, ky := knobPosition(pad, fb)
	color := RgbKnob
	if fb.Active && fb.HasDir {
		color = RgbKnobArmed
	}
	buf.SetFgOnly(kx, ky, constants.GlyphDragKnob, color, true)
}

// knobPosition converts point travel back to screen cells, clamped inside the pad
func knobPosition(pad core.Area, fb input.DragFeedback) (int, int) {
	cx, cy := pad.Center()
	if !fb.Active {
		return cx, cy
	}
	x := cx + int(fb.DX/constants.CellWidthPoints)
	y := cy + int(fb.DY/constants.CellHeightPoints)
	x = min(max(x, pad.X), pad.Right()-1)
	y = min(max(y, pad.Y), pad.Bottom()-1)
	return x, y
}

// drawStatusLine shows score and best under the board when the panel does not fit
func drawStatusLine(buf *RenderBuffer, l layout.Layout, f engine.Frame) {
	y := l.Frame.Bottom()
	if y >= l.Height {
		return
	}
	text := "Score " + strconv.Itoa(f.Score) + "  Best " + strconv.Itoa(f.HighScore)
	buf.DrawText(l.Frame.X, y, l.Width, text, RgbPanelText, false)
}

package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/layout"
)

// fakeController records control calls
type fakeController struct {
	state  engine.State
	dirs   []engine.Direction
	starts int
	pauses int
	resets int
}

func (f *fakeController) Start()                          { f.starts++; f.state = engine.StateRunning }
func (f *fakeController) Reset()                          { f.resets++; f.state = engine.StateIdle }
func (f *fakeController) SetDirection(d engine.Direction) { f.dirs = append(f.dirs, d) }
func (f *fakeController) State() engine.State             { return f.state }
func (f *fakeController) Pause() {
	f.pauses++
	switch f.state {
	case engine.StateRunning:
		f.state = engine.StatePaused
	case engine.StatePaused:
		f.state = engine.StateRunning
	}
}

func (f *fakeController) lastDir(t *testing.T) engine.Direction {
	t.Helper()
	if len(f.dirs) == 0 {
		t.Fatal("no direction emitted")
	}
	return f.dirs[len(f.dirs)-1]
}

func testLayout() layout.Layout {
	return layout.Compute(120, 40, 2, 20)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func press(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func release(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

// TestKeyboardDirections verifies arrows and wasd in both cases
func TestKeyboardDirections(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Direction
	}{
		{"arrow up", key(tcell.KeyUp), engine.Up},
		{"arrow down", key(tcell.KeyDown), engine.Down},
		{"arrow left", key(tcell.KeyLeft), engine.Left},
		{"arrow right", key(tcell.KeyRight), engine.Right},
		{"w", runeKey('w'), engine.Up},
		{"W", runeKey('W'), engine.Up},
		{"a", runeKey('a'), engine.Left},
		{"A", runeKey('A'), engine.Left},
		{"s", runeKey('s'), engine.Down},
		{"S", runeKey('S'), engine.Down},
		{"d", runeKey('d'), engine.Right},
		{"D", runeKey('D'), engine.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{state: engine.StateRunning}
			r := NewRouter(ctrl, testLayout())

			if !r.HandleEvent(tt.ev) {
				t.Fatal("direction key requested quit")
			}
			if got := ctrl.lastDir(t); got != tt.want {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestReverseNotFiltered verifies the router forwards reversals to the engine
func TestReverseNotFiltered(t *testing.T) {
	ctrl := &fakeController{state: engine.StateRunning}
	r := NewRouter(ctrl, testLayout())

	r.HandleEvent(key(tcell.KeyRight))
	r.HandleEvent(key(tcell.KeyLeft))

	if len(ctrl.dirs) != 2 || ctrl.dirs[1] != engine.Left {
		t.Errorf("dirs = %v, want [right left]", ctrl.dirs)
	}
}

// TestSpaceToggle verifies space starts from Idle/Over and toggles pause otherwise
func TestSpaceToggle(t *testing.T) {
	tests := []struct {
		from       engine.State
		wantStart  int
		wantPause  int
		wantResult engine.State
	}{
		{engine.StateIdle, 1, 0, engine.StateRunning},
		{engine.StateOver, 1, 0, engine.StateRunning},
		{engine.StateRunning, 0, 1, engine.StatePaused},
		{engine.StatePaused, 0, 1, engine.StateRunning},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			ctrl := &fakeController{state: tt.from}
			r := NewRouter(ctrl, testLayout())

			r.HandleEvent(runeKey(' '))

			if ctrl.starts != tt.wantStart || ctrl.pauses != tt.wantPause {
				t.Errorf("starts=%d pauses=%d, want %d/%d", ctrl.starts, ctrl.pauses, tt.wantStart, tt.wantPause)
			}
			if ctrl.state != tt.wantResult {
				t.Errorf("state = %v, want %v", ctrl.state, tt.wantResult)
			}
		})
	}
}

// TestSystemKeys verifies quit, reset and mute bindings
func TestSystemKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)} {
		r := NewRouter(&fakeController{}, testLayout())
		if r.HandleEvent(ev) {
			t.Errorf("%v should quit", ev.Name())
		}
	}

	ctrl := &fakeController{state: engine.StateRunning}
	muted := 0
	r := NewRouter(ctrl, testLayout(), WithMuteHandler(func() { muted++ }))

	r.HandleEvent(runeKey('r'))
	if ctrl.resets != 1 {
		t.Errorf("resets = %d, want 1", ctrl.resets)
	}
	r.HandleEvent(runeKey('m'))
	if muted != 1 {
		t.Errorf("mute calls = %d, want 1", muted)
	}
	if !r.HandleEvent(runeKey('x')) {
		t.Error("unbound key requested quit")
	}
}

// TestSwipe verifies board swipes against the point threshold
func TestSwipe(t *testing.T) {
	tests := []struct {
		name   string
		to     [2]int
		want   engine.Direction
		expect bool
	}{
		{"right 40pt", [2]int{15, 10}, engine.Right, true},
		{"left 40pt", [2]int{5, 10}, engine.Left, true},
		{"down 32pt", [2]int{10, 12}, engine.Down, true},
		{"up 32pt", [2]int{10, 8}, engine.Up, true},
		{"short horizontal 24pt", [2]int{13, 10}, 0, false},
		{"short vertical 16pt", [2]int{10, 11}, 0, false},
		{"diagonal picks larger axis", [2]int{14, 13}, engine.Down, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &fakeController{state: engine.StateRunning}
			r := NewRouter(ctrl, testLayout())

			r.HandleEvent(press(10, 10))
			r.HandleEvent(press(12, 10)) // motion does not emit
			if len(ctrl.dirs) != 0 {
				t.Fatal("swipe emitted before release")
			}
			r.HandleEvent(release(tt.to[0], tt.to[1]))

			if !tt.expect {
				if len(ctrl.dirs) != 0 {
					t.Errorf("short swipe emitted %v", ctrl.dirs)
				}
				return
			}
			if got := ctrl.lastDir(t); got != tt.want {
				t.Errorf("direction = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestButtons verifies each on-screen button emits on press
func TestButtons(t *testing.T) {
	l := testLayout()
	for _, b := range l.Buttons {
		t.Run(b.Dir.String(), func(t *testing.T) {
			ctrl := &fakeController{state: engine.StateRunning}
			r := NewRouter(ctrl, l)

			x, y := b.Area.Center()
			r.HandleEvent(press(x, y))
			if got := ctrl.lastDir(t); got != b.Dir {
				t.Errorf("direction = %v, want %v", got, b.Dir)
			}

			// Release far away must not add a swipe
			r.HandleEvent(release(x-20, y+10))
			if len(ctrl.dirs) != 1 {
				t.Errorf("dirs = %v, want one entry", ctrl.dirs)
			}
		})
	}
}

// TestDragFeedbackAndRelease verifies live feedback and emit-on-release
func TestDragFeedbackAndRelease(t *testing.T) {
	l := testLayout()
	ctrl := &fakeController{state: engine.StateRunning}
	var updates []DragFeedback
	r := NewRouter(ctrl, l, WithFeedbackHandler(func(f DragFeedback) { updates = append(updates, f) }))

	x, y := l.DragPad.Center()
	r.HandleEvent(press(x, y))
	if fb := r.Feedback(); !fb.Active || fb.HasDir {
		t.Fatalf("feedback after press = %+v", fb)
	}

	r.HandleEvent(press(x+2, y)) // 16pt, below drag threshold
	if fb := r.Feedback(); fb.HasDir || fb.DX != 16 {
		t.Errorf("feedback at 16pt = %+v", fb)
	}

	r.HandleEvent(press(x+3, y)) // 24pt
	fb := r.Feedback()
	if !fb.HasDir || fb.Dir != engine.Right {
		t.Errorf("feedback at 24pt = %+v, want right", fb)
	}
	if len(ctrl.dirs) != 0 {
		t.Fatal("drag emitted before release")
	}

	r.HandleEvent(release(x+3, y))
	if got := ctrl.lastDir(t); got != engine.Right {
		t.Errorf("direction = %v, want right", got)
	}
	if r.Feedback().Active {
		t.Error("feedback still active after release")
	}
	if len(updates) < 4 {
		t.Errorf("feedback notifications = %d, want at least 4", len(updates))
	}
}

// TestDragBelowThreshold verifies a short drag emits nothing
func TestDragBelowThreshold(t *testing.T) {
	l := testLayout()
	ctrl := &fakeController{state: engine.StateRunning}
	r := NewRouter(ctrl, l)

	x, y := l.DragPad.Center()
	r.HandleEvent(press(x, y))
	r.HandleEvent(press(x, y-1)) // 16pt up
	r.HandleEvent(release(x, y-1))

	if len(ctrl.dirs) != 0 {
		t.Errorf("short drag emitted %v", ctrl.dirs)
	}
}

// TestPressOutsideWidgetsIgnored verifies presses off the board and panel do nothing
func TestPressOutsideWidgetsIgnored(t *testing.T) {
	ctrl := &fakeController{state: engine.StateRunning}
	r := NewRouter(ctrl, testLayout())

	r.HandleEvent(press(110, 39))
	r.HandleEvent(release(60, 39))

	if len(ctrl.dirs) != 0 {
		t.Errorf("ignored press emitted %v", ctrl.dirs)
	}
}

// TestRemoteCommands verifies feed commands reach the controller like local input
func TestRemoteCommands(t *testing.T) {
	ctrl := &fakeController{state: engine.StateIdle}
	r := NewRouter(ctrl, testLayout())

	r.HandleCommand(Command{Kind: CommandToggle})
	if ctrl.starts != 1 {
		t.Fatalf("toggle from idle did not start")
	}

	r.HandleCommand(Command{Kind: CommandDirection, Dir: engine.Up})
	if got := ctrl.lastDir(t); got != engine.Up {
		t.Errorf("direction = %v, want up", got)
	}

	r.HandleCommand(Command{Kind: CommandSwipe, DX: -45, DY: 10})
	if got := ctrl.lastDir(t); got != engine.Left {
		t.Errorf("swipe direction = %v, want left", got)
	}

	before := len(ctrl.dirs)
	r.HandleCommand(Command{Kind: CommandSwipe, DX: 10, DY: -29})
	if len(ctrl.dirs) != before {
		t.Error("sub-threshold remote swipe emitted")
	}

	r.HandleCommand(Command{Kind: CommandReset})
	if ctrl.resets != 1 {
		t.Errorf("resets = %d, want 1", ctrl.resets)
	}
}

// TestResizeEvent verifies resize is forwarded to the host callback
func TestResizeEvent(t *testing.T) {
	resized := 0
	r := NewRouter(&fakeController{}, testLayout(), WithResizeHandler(func() { resized++ }))
	if !r.HandleEvent(tcell.NewEventResize(100, 30)) {
		t.Fatal("resize requested quit")
	}
	if resized != 1 {
		t.Errorf("resize callbacks = %d, want 1", resized)
	}
}

package engine

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-arcade/constants"
	"github.com/lixenwraith/snake-arcade/events"
)

// newTestEngine builds an engine on a manual scheduler with a fixed seed
func newTestEngine(t *testing.T, n int, opts ...Option) (*Engine, *ManualScheduler) {
	t.Helper()
	sched := NewManualScheduler()
	base := []Option{
		WithScheduler(sched),
		WithRand(rand.New(rand.NewSource(42))),
	}
	e := NewEngine(Config{GridSize: n, TickInterval: 200 * time.Millisecond, Seed: 42}, append(base, opts...)...)
	return e, sched
}

// place overwrites the running board for scenario tests
func (e *Engine) place(snake []Cell, dir Direction, food Cell) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snake = append([]Cell(nil), snake...)
	e.dir = dir
	e.moving = true
	e.hasPending = false
	e.food = food
	e.hasFood = true
}

func foodOnSnake(e *Engine) bool {
	food, ok := e.Food()
	if !ok {
		return false
	}
	for _, c := range e.Snake() {
		if c == food {
			return true
		}
	}
	return false
}

func equalCells(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestStartFromIdle verifies a fresh run and its first step to the right
func TestStartFromIdle(t *testing.T) {
	e, sched := newTestEngine(t, 20)

	if e.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", e.State())
	}

	e.Start()

	if e.State() != StateRunning {
		t.Fatalf("state after Start = %v, want running", e.State())
	}
	if got := e.Snake(); !equalCells(got, []Cell{{10, 10}}) {
		t.Fatalf("snake after Start = %v, want [(10,10)]", got)
	}
	if e.Moving() {
		t.Error("snake should not be moving before the first tick")
	}
	if sched.Live() != 1 {
		t.Errorf("live schedules = %d, want 1", sched.Live())
	}
	if sched.LastInterval() != 200*time.Millisecond {
		t.Errorf("tick interval = %v, want 200ms", sched.LastInterval())
	}
	if e.RunID() == "" {
		t.Error("run id should be set after Start")
	}
	if foodOnSnake(e) {
		t.Error("food placed on snake")
	}

	e.Tick()

	head := e.Snake()[0]
	if head != (Cell{11, 10}) {
		t.Errorf("head after one tick = %v, want (11,10)", head)
	}
	if e.Direction() != Right || !e.Moving() {
		t.Errorf("direction = %v moving = %v, want right/true", e.Direction(), e.Moving())
	}
}

// TestStartIsNoOpWhileRunning verifies Start does not restart an active run
func TestStartIsNoOpWhileRunning(t *testing.T) {
	e, sched := newTestEngine(t, 20)
	e.Start()
	id := e.RunID()
	e.Tick()

	e.Start()

	if e.RunID() != id {
		t.Error("Start while running replaced the run")
	}
	if sched.Live() != 1 {
		t.Errorf("live schedules = %d, want 1", sched.Live())
	}

	e.Pause()
	e.Start()
	if e.State() != StatePaused {
		t.Errorf("Start while paused changed state to %v", e.State())
	}
}

// TestEatFoodScenario verifies growth, scoring and resampling on food
func TestEatFoodScenario(t *testing.T) {
	e, _ := newTestEngine(t, 20)
	e.Start()
	e.place([]Cell{{10, 10}}, Right, Cell{11, 10})

	e.Tick()

	want := []Cell{{11, 10}, {10, 10}}
	if got := e.Snake(); !equalCells(got, want) {
		t.Fatalf("snake = %v, want %v", got, want)
	}
	if e.Score() != 10 {
		t.Errorf("score = %d, want 10", e.Score())
	}
	food, ok := e.Food()
	if !ok {
		t.Fatal("food should be resampled")
	}
	if foodOnSnake(e) {
		t.Errorf("food %v resampled onto snake", food)
	}
}

// TestPlainMoveScenario verifies a non-food step keeps the length
func TestPlainMoveScenario(t *testing.T) {
	e, _ := newTestEngine(t, 20)
	e.Start()
	e.place([]Cell{{5, 5}, {4, 5}, {3, 5}}, Right, Cell{0, 0})

	e.Tick()

	want := []Cell{{6, 5}, {5, 5}, {4, 5}}
	if got := e.Snake(); !equalCells(got, want) {
		t.Fatalf("snake = %v, want %v", got, want)
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	if food, _ := e.Food(); food != (Cell{0, 0}) {
		t.Errorf("food moved to %v without being eaten", food)
	}
}

// TestWallCollision verifies leaving the board on each side ends the run
func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Cell
		dir  Direction
	}{
		{"top", Cell{3, 0}, Up},
		{"bottom", Cell{3, 9}, Down},
		{"left", Cell{0, 4}, Left},
		{"right", Cell{9, 4}, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := events.NewEventQueue()
			e, sched := newTestEngine(t, 10, WithEvents(q))
			e.Start()
			e.place([]Cell{tt.head}, tt.dir, Cell{5, 5})
			q.Consume()

			e.Tick()

			if e.State() != StateOver {
				t.Fatalf("state = %v, want over", e.State())
			}
			if sched.Live() != 0 {
				t.Errorf("live schedules after game over = %d, want 0", sched.Live())
			}
			if got := e.Snake(); !equalCells(got, []Cell{tt.head}) {
				t.Errorf("frozen snake = %v, want [%v]", got, tt.head)
			}

			var over *events.GameOverPayload
			for _, ev := range q.Consume() {
				if ev.Type == events.EventGameOver {
					over = ev.Payload.(*events.GameOverPayload)
				}
			}
			if over == nil {
				t.Fatal("no game over event")
			}
			if over.Cause != events.CauseWall {
				t.Errorf("cause = %v, want wall", over.Cause)
			}

			// Further ticks are no-ops
			before := e.Frame()
			e.Tick()
			e.Tick()
			after := e.Frame()
			if !equalCells(before.Snake, after.Snake) || before.Ticks != after.Ticks {
				t.Error("Tick after game over changed the board")
			}
		})
	}
}

// TestSelfCollision verifies running into the body, including the tail cell
func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name  string
		snake []Cell
	}{
		{"body", []Cell{{2, 2}, {3, 2}, {3, 3}, {2, 3}, {1, 3}}},
		{"tail", []Cell{{2, 2}, {3, 2}, {3, 3}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := events.NewEventQueue()
			e, _ := newTestEngine(t, 10, WithEvents(q))
			e.Start()
			e.place(tt.snake, Left, Cell{8, 8})
			e.SetDirection(Down)

			e.Tick()

			if e.State() != StateOver {
				t.Fatalf("state = %v, want over", e.State())
			}
			for _, ev := range q.Consume() {
				if ev.Type == events.EventGameOver {
					if p := ev.Payload.(*events.GameOverPayload); p.Cause != events.CauseSelf {
						t.Errorf("cause = %v, want self", p.Cause)
					}
				}
			}
		})
	}
}

// TestReverseDirectionIgnored verifies the exact reverse never replaces the heading
func TestReverseDirectionIgnored(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			e, _ := newTestEngine(t, 20)
			e.Start()
			e.place([]Cell{{10, 10}}, d, Cell{0, 0})

			e.SetDirection(d.Opposite())
			e.Tick()

			if e.Direction() != d {
				t.Errorf("direction = %v, want %v", e.Direction(), d)
			}
			if e.State() != StateRunning {
				t.Errorf("reverse input ended the run: state %v", e.State())
			}
		})
	}
}

// TestFirstDirectionAnyHeading verifies the first input may point anywhere
func TestFirstDirectionAnyHeading(t *testing.T) {
	e, _ := newTestEngine(t, 20)
	e.Start()

	e.SetDirection(Left)
	e.Tick()

	if e.Direction() != Left {
		t.Errorf("direction = %v, want left", e.Direction())
	}
	if head := e.Snake()[0]; head != (Cell{9, 10}) {
		t.Errorf("head = %v, want (9,10)", head)
	}
}

// TestPendingDirectionLatestWins verifies buffering between ticks
func TestPendingDirectionLatestWins(t *testing.T) {
	e, _ := newTestEngine(t, 20)
	e.Start()
	e.place([]Cell{{10, 10}}, Right, Cell{0, 0})

	e.SetDirection(Up)
	e.SetDirection(Down)
	if e.Direction() != Right {
		t.Fatalf("direction changed before tick: %v", e.Direction())
	}

	e.Tick()

	if e.Direction() != Down {
		t.Errorf("direction = %v, want down", e.Direction())
	}
	if head := e.Snake()[0]; head != (Cell{10, 11}) {
		t.Errorf("head = %v, want (10,11)", head)
	}
}

// TestSetDirectionIgnoredWhenNotRunning verifies input outside a run is dropped
func TestSetDirectionIgnoredWhenNotRunning(t *testing.T) {
	e, _ := newTestEngine(t, 20)

	e.SetDirection(Up)
	e.Start()
	e.Tick()
	if e.Direction() != Right {
		t.Errorf("direction set while idle leaked into the run: %v", e.Direction())
	}

	e.Pause()
	e.SetDirection(Down)
	e.Pause()
	e.Tick()
	if e.Direction() != Right {
		t.Errorf("direction set while paused leaked into the run: %v", e.Direction())
	}
}

// TestPauseToggle verifies pause twice returns to running with a fresh schedule
func TestPauseToggle(t *testing.T) {
	e, sched := newTestEngine(t, 20)
	e.Start()

	e.Pause()
	if e.State() != StatePaused {
		t.Fatalf("state = %v, want paused", e.State())
	}
	if sched.Live() != 0 {
		t.Errorf("live schedules while paused = %d, want 0", sched.Live())
	}
	head := e.Snake()[0]
	e.Tick()
	if e.Snake()[0] != head {
		t.Error("Tick while paused moved the snake")
	}

	e.Pause()
	if e.State() != StateRunning {
		t.Fatalf("state = %v, want running", e.State())
	}
	if sched.Live() != 1 {
		t.Errorf("live schedules after resume = %d, want 1", sched.Live())
	}
}

// TestPauseOutsideRun verifies Pause and Resume do nothing in Idle and Over
func TestPauseOutsideRun(t *testing.T) {
	e, sched := newTestEngine(t, 10)

	e.Pause()
	e.Resume()
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}

	e.Start()
	e.place([]Cell{{9, 0}}, Right, Cell{0, 5})
	e.Tick()
	e.Pause()
	e.Resume()
	if e.State() != StateOver {
		t.Errorf("state = %v, want over", e.State())
	}
	if sched.Live() != 0 {
		t.Errorf("live schedules = %d, want 0", sched.Live())
	}
}

// TestResume verifies Resume only leaves Paused
func TestResume(t *testing.T) {
	e, sched := newTestEngine(t, 20)
	e.Start()

	e.Resume()
	if e.State() != StateRunning || sched.Live() != 1 {
		t.Fatalf("Resume while running: state %v live %d", e.State(), sched.Live())
	}

	e.Pause()
	e.Resume()
	if e.State() != StateRunning || sched.Live() != 1 {
		t.Errorf("Resume from paused: state %v live %d", e.State(), sched.Live())
	}
}

// TestScheduledTicks verifies the scheduler drives the engine and stale ticks are dropped
func TestScheduledTicks(t *testing.T) {
	e, sched := newTestEngine(t, 20)
	e.Start()

	if n := sched.Fire(); n != 1 {
		t.Fatalf("fired %d callbacks, want 1", n)
	}
	if head := e.Snake()[0]; head != (Cell{11, 10}) {
		t.Fatalf("head = %v, want (11,10)", head)
	}

	// Pause then resume leaves one cancelled schedule behind
	e.Pause()
	e.Pause()
	ticks := e.Frame().Ticks
	sched.FireStale()
	if e.Frame().Ticks != ticks {
		t.Error("tick from cancelled schedule advanced the run")
	}

	sched.Fire()
	if e.Frame().Ticks != ticks+1 {
		t.Errorf("ticks = %d, want %d", e.Frame().Ticks, ticks+1)
	}
}

// TestRestartCancelsOldSchedule verifies a new run after Over has exactly one tick loop
func TestRestartCancelsOldSchedule(t *testing.T) {
	e, sched := newTestEngine(t, 10)
	e.Start()
	e.place([]Cell{{9, 0}}, Right, Cell{0, 5})
	e.Tick()
	if e.State() != StateOver {
		t.Fatalf("state = %v, want over", e.State())
	}

	e.Start()
	if sched.Live() != 1 {
		t.Fatalf("live schedules = %d, want 1", sched.Live())
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0 after restart", e.Score())
	}

	sched.FireStale()
	if e.Frame().Ticks != 0 {
		t.Error("stale tick advanced the new run")
	}
}

// TestReset verifies Reset clears the board from any state
func TestReset(t *testing.T) {
	setups := map[string]func(e *Engine){
		"idle":    func(e *Engine) {},
		"running": func(e *Engine) { e.Start(); e.Tick() },
		"paused":  func(e *Engine) { e.Start(); e.Pause() },
		"over": func(e *Engine) {
			e.Start()
			e.place([]Cell{{9, 0}}, Right, Cell{0, 5})
			e.Tick()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			q := events.NewEventQueue()
			e, sched := newTestEngine(t, 10, WithEvents(q))
			setup(e)
			q.Consume()

			e.Reset()

			if e.State() != StateIdle {
				t.Errorf("state = %v, want idle", e.State())
			}
			if len(e.Snake()) != 0 {
				t.Errorf("snake = %v, want empty", e.Snake())
			}
			if _, ok := e.Food(); ok {
				t.Error("food should be cleared")
			}
			if e.Score() != 0 {
				t.Errorf("score = %d, want 0", e.Score())
			}
			if sched.Live() != 0 {
				t.Errorf("live schedules = %d, want 0", sched.Live())
			}

			var sawReset bool
			for _, ev := range q.Consume() {
				if ev.Type == events.EventGameReset {
					sawReset = true
				}
			}
			if !sawReset {
				t.Error("no reset event")
			}
		})
	}
}

// TestFoodNeverOnSnake runs long seeded games checking every resample
func TestFoodNeverOnSnake(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		sched := NewManualScheduler()
		e := NewEngine(Config{GridSize: 8, Seed: seed}, WithScheduler(sched))
		steer := rand.New(rand.NewSource(seed * 7))

		e.Start()
		for i := 0; i < 2000; i++ {
			if e.State() == StateOver {
				e.Start()
			}
			e.SetDirection(Directions[steer.Intn(len(Directions))])
			e.Tick()
			if foodOnSnake(e) {
				t.Fatalf("seed %d step %d: food on snake", seed, i)
			}
			seen := make(map[Cell]bool)
			for _, c := range e.Snake() {
				if seen[c] {
					t.Fatalf("seed %d step %d: duplicate cell %v", seed, i, c)
				}
				seen[c] = true
			}
		}
	}
}

// TestFullBoardHasNoFood verifies no food is placed when every cell is snake
func TestFullBoardHasNoFood(t *testing.T) {
	e, _ := newTestEngine(t, 5)
	e.Start()

	var body []Cell
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			body = append(body, Cell{x, y})
		}
	}
	e.place(body, Right, Cell{})

	e.mu.Lock()
	e.placeFoodLocked()
	has := e.hasFood
	e.mu.Unlock()

	if has {
		t.Error("food placed on a full board")
	}
}

// TestHighScore verifies the best score is raised, saved and flagged on game over
func TestHighScore(t *testing.T) {
	store := NewMemoryStore(15)
	q := events.NewEventQueue()
	e, _ := newTestEngine(t, 20, WithStore(store), WithEvents(q))

	if e.HighScore() != 15 {
		t.Fatalf("loaded high score = %d, want 15", e.HighScore())
	}

	e.Start()
	e.place([]Cell{{5, 5}}, Right, Cell{6, 5})
	e.Tick()
	if e.Score() != 10 || e.HighScore() != 15 || store.Saves() != 0 {
		t.Fatalf("after first food: score %d best %d saves %d", e.Score(), e.HighScore(), store.Saves())
	}

	e.place([]Cell{{6, 5}, {5, 5}}, Right, Cell{7, 5})
	e.Tick()
	if e.HighScore() != 20 {
		t.Errorf("high score = %d, want 20", e.HighScore())
	}
	if saved, _ := store.Load(); saved != 20 || store.Saves() != 1 {
		t.Errorf("stored = %d saves = %d, want 20/1", saved, store.Saves())
	}

	e.place([]Cell{{19, 5}}, Right, Cell{0, 0})
	e.Tick()

	f := e.Frame()
	if f.State != StateOver || !f.NewHigh {
		t.Errorf("frame state %v new high %v, want over/true", f.State, f.NewHigh)
	}

	var sawHigh bool
	for _, ev := range q.Consume() {
		if ev.Type == events.EventHighScoreChanged {
			sawHigh = true
		}
	}
	if !sawHigh {
		t.Error("no high score event")
	}

	// Next run without beating 20 is not a new high
	e.Start()
	e.place([]Cell{{19, 5}}, Right, Cell{0, 0})
	e.Tick()
	if e.Frame().NewHigh {
		t.Error("run with score 0 flagged as new high")
	}
}

type failingStore struct{}

func (failingStore) Load() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) Save(int) error     { return errors.New("disk on fire") }

// TestStoreErrorsDegrade verifies store failures leave the engine playable
func TestStoreErrorsDegrade(t *testing.T) {
	e, _ := newTestEngine(t, 20, WithStore(failingStore{}))
	if e.HighScore() != 0 {
		t.Errorf("high score = %d, want 0", e.HighScore())
	}

	e.Start()
	e.place([]Cell{{5, 5}}, Right, Cell{6, 5})
	e.Tick()
	if e.HighScore() != 10 {
		t.Errorf("in-memory high score = %d, want 10", e.HighScore())
	}
}

// TestStartEvents verifies the event sequence of a new run
func TestStartEvents(t *testing.T) {
	q := events.NewEventQueue()
	e, _ := newTestEngine(t, 20, WithEvents(q))

	e.Start()

	got := q.Consume()
	want := []events.EventType{events.EventGameStarted, events.EventStateChanged, events.EventScoreChanged}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, ev := range got {
		if ev.Type != want[i] {
			t.Errorf("event %d = %v, want %v", i, ev.Type, want[i])
		}
	}
	if p := got[0].Payload.(*events.GameStartedPayload); p.RunID != e.RunID() || p.GridSize != 20 {
		t.Errorf("started payload = %+v", p)
	}
	if p := got[1].Payload.(*events.StateChangedPayload); p.From != "idle" || p.To != "running" {
		t.Errorf("state payload = %+v", p)
	}
}

// TestResize verifies immediate resize when idle and deferral during a run
func TestResize(t *testing.T) {
	e, _ := newTestEngine(t, 20)

	e.Resize(12)
	if e.GridSize() != 12 {
		t.Fatalf("grid = %d, want 12", e.GridSize())
	}

	e.Start()
	e.Resize(30)
	if e.GridSize() != 12 {
		t.Errorf("grid changed mid-run to %d", e.GridSize())
	}

	e.Reset()
	if e.GridSize() != 30 {
		t.Errorf("deferred resize not applied on reset: %d", e.GridSize())
	}

	e.Resize(1)
	if e.GridSize() != constants.MinGridSize {
		t.Errorf("grid = %d, want clamp to %d", e.GridSize(), constants.MinGridSize)
	}
}

// TestDrawOutsideLock verifies renderers may call back into the engine
func TestDrawOutsideLock(t *testing.T) {
	var frames []Frame
	var e *Engine
	r := RendererFunc(func(f Frame) {
		_ = e.State()
		frames = append(frames, f)
	})
	e, _ = newTestEngine(t, 20, WithRenderer(r))

	e.Start()
	e.Tick()
	e.Pause()
	e.Reset()

	if len(frames) != 4 {
		t.Fatalf("draws = %d, want 4", len(frames))
	}
	states := []State{StateRunning, StateRunning, StatePaused, StateIdle}
	for i, f := range frames {
		if f.State != states[i] {
			t.Errorf("frame %d state = %v, want %v", i, f.State, states[i])
		}
	}
	if frames[1].Ticks != 1 {
		t.Errorf("frame ticks = %d, want 1", frames[1].Ticks)
	}
}

// TestTickEmitsMoved verifies every completed step is announced with its tick count
func TestTickEmitsMoved(t *testing.T) {
	q := events.NewEventQueue()
	e, _ := newTestEngine(t, 20, WithEvents(q))
	e.Start()
	e.place([]Cell{{10, 10}}, Right, Cell{0, 0})
	q.Consume()

	for i := 1; i <= 3; i++ {
		e.Tick()
		batch := q.Consume()
		if len(batch) != 1 || batch[0].Type != events.EventSnakeMoved {
			t.Fatalf("tick %d: batch = %v, want one SnakeMoved", i, batch)
		}
		p := batch[0].Payload.(*events.MovedPayload)
		if p.Tick != uint64(i) || p.X != 10+i || p.Y != 10 || p.Length != 1 {
			t.Errorf("tick %d: payload = %+v", i, p)
		}
	}

	// A food step reports the grown length after the food events
	e.place([]Cell{{13, 10}}, Right, Cell{14, 10})
	e.Tick()
	batch := q.Consume()
	last := batch[len(batch)-1]
	if last.Type != events.EventSnakeMoved || last.Payload.(*events.MovedPayload).Length != 2 {
		t.Errorf("food step last event = %+v", last)
	}

	// The fatal step is reported as game over only
	e.place([]Cell{{19, 10}}, Right, Cell{0, 0})
	e.Tick()
	for _, ev := range q.Consume() {
		if ev.Type == events.EventSnakeMoved {
			t.Error("collision step should not emit SnakeMoved")
		}
	}
}

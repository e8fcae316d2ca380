package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-arcade/engine"
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone      KeyBehavior = iota
	BehaviorDirection             // steer the snake
	BehaviorAction                // game control (toggle, reset)
	BehaviorSystem                // host control (quit, mute)
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	Dir        engine.Direction
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, case-sensitive
	Runes map[rune]KeyEntry
}

func dirEntry(d engine.Direction) KeyEntry {
	return KeyEntry{Behavior: BehaviorDirection, Dir: d, IntentType: IntentDirection}
}

var (
	entryQuit   = KeyEntry{Behavior: BehaviorSystem, IntentType: IntentQuit}
	entryMute   = KeyEntry{Behavior: BehaviorSystem, IntentType: IntentMute}
	entryToggle = KeyEntry{Behavior: BehaviorAction, IntentType: IntentToggle}
	entryReset  = KeyEntry{Behavior: BehaviorAction, IntentType: IntentReset}
)

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     dirEntry(engine.Up),
			tcell.KeyDown:   dirEntry(engine.Down),
			tcell.KeyLeft:   dirEntry(engine.Left),
			tcell.KeyRight:  dirEntry(engine.Right),
			tcell.KeyEscape: entryQuit,
			tcell.KeyCtrlC:  entryQuit,
		},

		Runes: map[rune]KeyEntry{
			'w': dirEntry(engine.Up),
			'W': dirEntry(engine.Up),
			's': dirEntry(engine.Down),
			'S': dirEntry(engine.Down),
			'a': dirEntry(engine.Left),
			'A': dirEntry(engine.Left),
			'd': dirEntry(engine.Right),
			'D': dirEntry(engine.Right),

			' ': entryToggle,
			'r': entryReset,
			'R': entryReset,
			'm': entryMute,
			'q': entryQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

// keyNames maps config key names to tcell keys
var keyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+p":    tcell.KeyCtrlP,
	"ctrl+r":    tcell.KeyCtrlR,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
}

// KeyByName resolves a config key name
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keymapFile is the on-disk keymap shape
//
//	[keys]
//	up = "up"
//	esc = "none"
//
//	[runes]
//	space = "toggle"
//	k = "up"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
// Returns error on unknown sections, action names, key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown entry %q", undecoded[0].String())
	}

	kt := &KeyTable{}

	if f.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(f.Keys))
		for name, action := range f.Keys {
			k, ok := KeyByName(strings.ToLower(name))
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", name, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}

	if f.Runes != nil {
		kt.Runes = make(map[rune]KeyEntry, len(f.Runes))
		for keyStr, action := range f.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}

	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries with BehaviorNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()

	for k, v := range override.Runes {
		if v.Behavior == BehaviorNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Behavior == BehaviorNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}

	return result
}

package core

// OverlayContent holds typed overlay data drawn centered over the board
type OverlayContent struct {
	Title string
	Items []OverlayItem
}

// OverlayItem is implemented by all overlay component types
type OverlayItem interface {
	overlayItem() // sealed marker
}

// OverlayLine is a single centered line of text
type OverlayLine struct {
	Text      string
	Highlight bool
}

func (OverlayLine) overlayItem() {}

// OverlayCard displays key-value entries below the title
type OverlayCard struct {
	Entries []CardEntry
}

func (OverlayCard) overlayItem() {}

// CardEntry is a single key-value pair within a card
type CardEntry struct {
	Key   string
	Value string
}

// Lines flattens content into display rows, title first
// Card entries render as "Key: Value"
func (c *OverlayContent) Lines() []OverlayLine {
	if c == nil {
		return nil
	}
	var out []OverlayLine
	if c.Title != "" {
		out = append(out, OverlayLine{Text: c.Title, Highlight: true})
	}
	for _, item := range c.Items {
		switch v := item.(type) {
		case OverlayLine:
			out = append(out, v)
		case OverlayCard:
			for _, e := range v.Entries {
				out = append(out, OverlayLine{Text: e.Key + ": " + e.Value})
			}
		}
	}
	return out
}

// Width returns the widest line in runes
func (c *OverlayContent) Width() int {
	w := 0
	for _, l := range c.Lines() {
		if n := len([]rune(l.Text)); n > w {
			w = n
		}
	}
	return w
}

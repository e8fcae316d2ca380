package feed

import (
	"github.com/lixenwraith/snake-arcade/engine"
	"github.com/lixenwraith/snake-arcade/events"
)

// Protocol uses single-character message types in the "t" field.
//
//	Client → Server:
//	  "d" = direction button {"t":"d","dir":"up"}
//	  "w" = swipe            {"t":"w","dx":-42.5,"dy":3}   (points)
//	  "p" = toggle           {"t":"p"}
//	  "r" = reset            {"t":"r"}
//	Server → Client:
//	  "w" = welcome {"t":"w","i":"conn-id"}
//	  "s" = state   {"t":"s","st":"running","p":30,"b":90,"s":[[x,y],...],"f":[x,y],"n":20,"h":false,"r":"run-id","k":12}
//	  "o" = over    {"t":"o","p":30,"b":90,"h":true,"c":"wall"}
const (
	MsgDirection = "d"
	MsgSwipe     = "w"
	MsgToggle    = "p"
	MsgReset     = "r"

	MsgWelcome = "w"
	MsgState   = "s"
	MsgOver    = "o"
)

// ClientMessage is the incoming control message
type ClientMessage struct {
	Type string  `json:"t"`
	Dir  string  `json:"dir,omitempty"`
	DX   float64 `json:"dx,omitempty"`
	DY   float64 `json:"dy,omitempty"`
}

// WelcomeMsg is sent once on connect, before the first state
type WelcomeMsg struct {
	Type string `json:"t"`
	ID   string `json:"i"`
}

// StateMsg mirrors one engine frame; cells are flat [x,y] pairs
type StateMsg struct {
	Type      string   `json:"t"`
	State     string   `json:"st"`
	Score     int      `json:"p"`
	Best      int      `json:"b"`
	Snake     [][2]int `json:"s"`
	Food      *[2]int  `json:"f"`
	GridSize  int      `json:"n"`
	NewHigh   bool     `json:"h"`
	RunID     string   `json:"r,omitempty"`
	Direction string   `json:"dir,omitempty"`
	Ticks     uint64   `json:"k"`
}

// OverMsg announces the end of a run
type OverMsg struct {
	Type    string `json:"t"`
	Score   int    `json:"p"`
	Best    int    `json:"b"`
	NewHigh bool   `json:"h"`
	Cause   string `json:"c"`
}

// NewStateMsg converts a frame to its wire form
func NewStateMsg(f engine.Frame) StateMsg {
	msg := StateMsg{
		Type:     MsgState,
		State:    f.State.String(),
		Score:    f.Score,
		Best:     f.HighScore,
		Snake:    make([][2]int, len(f.Snake)),
		GridSize: f.GridSize,
		NewHigh:  f.NewHigh,
		RunID:    f.RunID,
		Ticks:    f.Ticks,
	}
	for i, c := range f.Snake {
		msg.Snake[i] = [2]int{c.X, c.Y}
	}
	if f.HasFood {
		msg.Food = &[2]int{f.Food.X, f.Food.Y}
	}
	if f.Moving {
		msg.Direction = f.Direction.String()
	}
	return msg
}

// NewOverMsg converts a game over payload to its wire form
func NewOverMsg(p *events.GameOverPayload) OverMsg {
	return OverMsg{
		Type:    MsgOver,
		Score:   p.Score,
		Best:    p.HighScore,
		NewHigh: p.NewHigh,
		Cause:   p.Cause.String(),
	}
}

package engine

import (
	"fmt"
	"strings"
)

// Cell is an integer coordinate on the N×N board, origin at top-left
type Cell struct {
	X, Y int
}

// Add returns the cell one step in direction d
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether the cell lies on an n×n board
func (c Cell) In(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four grid headings
// "Not moving yet" is tracked separately by the engine, never as a zero delta
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all headings in declaration order
var Directions = [4]Direction{Up, Down, Left, Right}

var directionDeltas = [4][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

var directionNames = [4]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Delta returns the unit (dx, dy) step
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= len(directionDeltas) {
		return 0, 0
	}
	v := directionDeltas[d]
	return v[0], v[1]
}

// Opposite returns the exact reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return int(d) < len(directionNames)
}

func (d Direction) String() string {
	if !d.Valid() {
		return "none"
	}
	return directionNames[d]
}

// ParseDirection accepts the lowercase names produced by String
func ParseDirection(s string) (Direction, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return 0, false
}

package entity

import (
	"slices"
)

const DefaultBoardSize = 15

// Cell is the content of one board square.
type Cell int8

const (
	CellDamaged Cell = -1
	CellEmpty   Cell = 0
	CellBlack   Cell = 1
	CellWhite   Cell = 2
)

type Color string

const (
	ColorBlack Color = "black"
	ColorWhite Color = "white"
)

func (that Color) Valid() bool {
	return that == ColorBlack || that == ColorWhite
}

// Opponent returns the other color.
func (that Color) Opponent() Color {
	if that == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

// Stone returns the board cell a stone of this color occupies.
func (that Color) Stone() Cell {
	if that == ColorBlack {
		return CellBlack
	}
	return CellWhite
}

// ColorOfStone maps a stone cell back to its color.
func ColorOfStone(cell Cell) (Color, bool) {
	switch cell {
	case CellBlack:
		return ColorBlack, true
	case CellWhite:
		return ColorWhite, true
	default:
		return "", false
	}
}

// Coord is a board position, x is the column and y the row.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ColorAssignment says which seat plays which color.
type ColorAssignment struct {
	First  Color `json:"first"`
	Second Color `json:"second"`
}

func NewColorAssignment(firstSeatColor Color) ColorAssignment {
	if firstSeatColor != ColorWhite {
		firstSeatColor = ColorBlack
	}
	return ColorAssignment{First: firstSeatColor, Second: firstSeatColor.Opponent()}
}

func (that ColorAssignment) Of(seat Seat) Color {
	if seat == SeatSecond {
		return that.Second
	}
	return that.First
}

// SeatOf returns the seat holding the given color.
func (that ColorAssignment) SeatOf(color Color) Seat {
	if that.First == color {
		return SeatFirst
	}
	return SeatSecond
}

// Swapped returns the assignment with both colors exchanged.
func (that ColorAssignment) Swapped() ColorAssignment {
	return ColorAssignment{First: that.Second, Second: that.First}
}

// Winner records the end of a match.
type Winner struct {
	Color     Color   `json:"color"`
	Seat      Seat    `json:"seat"`
	LineCells []Coord `json:"lineCells"`
}

// GameState is one immutable snapshot of a match. Its JSON form is the wire form.
type GameState struct {
	BoardSize       int             `json:"boardSize"`
	Board           []Cell          `json:"board"`
	CurrentTurn     Color           `json:"currentTurnColor"`
	ColorAssignment ColorAssignment `json:"colorAssignment"`
	SkillUsage      SkillUsage      `json:"skillUsage"`
	Winner          *Winner         `json:"winner"`
}

func (that GameState) Inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < that.BoardSize && y < that.BoardSize
}

// At returns the cell at (x, y). The caller checks bounds.
func (that GameState) At(x, y int) Cell {
	return that.Board[y*that.BoardSize+x]
}

func (that GameState) IsFinished() bool {
	return that.Winner != nil
}

// CurrentSeat returns the seat whose turn it is.
func (that GameState) CurrentSeat() Seat {
	return that.ColorAssignment.SeatOf(that.CurrentTurn)
}

// Clone returns a deep copy, so the result shares no memory with the receiver.
func (that GameState) Clone() GameState {
	clone := that
	clone.Board = slices.Clone(that.Board)
	if that.Winner != nil {
		winner := *that.Winner
		winner.LineCells = slices.Clone(that.Winner.LineCells)
		clone.Winner = &winner
	}
	return clone
}

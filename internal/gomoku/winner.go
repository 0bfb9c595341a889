package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

const WinLength = 5

// directions are scanned in this order: right, down, down-right, up-right.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// WinResult is the first winning line found on a board.
type WinResult struct {
	Color     entity.Color
	LineCells []entity.Coord
}

// CheckWinner scans start cells row by row and returns the first line of WinLength or more
// same-colored stones, or nil.
func CheckWinner(state entity.GameState) *WinResult {
	for y := 0; y < state.BoardSize; y++ {
		for x := 0; x < state.BoardSize; x++ {
			color, ok := entity.ColorOfStone(state.At(x, y))
			if !ok {
				continue
			}

			for _, d := range directions {
				if lineLength(state, x, y, d) >= WinLength {
					cells := make([]entity.Coord, WinLength)
					for i := range cells {
						cells[i] = entity.Coord{X: x + d[0]*i, Y: y + d[1]*i}
					}

					return &WinResult{Color: color, LineCells: cells}
				}
			}
		}
	}

	return nil
}

// lineLength counts the run starting at (x, y) in direction d, or 0 when (x, y) is not the
// start of that run.
func lineLength(state entity.GameState, x, y int, d [2]int) int {
	cell := state.At(x, y)

	px, py := x-d[0], y-d[1]
	if state.Inside(px, py) && state.At(px, py) == cell {
		return 0
	}

	n := 0
	for cx, cy := x, y; state.Inside(cx, cy) && state.At(cx, cy) == cell; cx, cy = cx+d[0], cy+d[1] {
		n++
	}

	return n
}

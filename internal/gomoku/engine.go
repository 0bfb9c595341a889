package gomoku

import (
	"slices"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// Init returns a fresh match. Black always moves first.
func Init(boardSize int, firstSeatColor entity.Color) entity.GameState {
	if boardSize <= 0 {
		boardSize = entity.DefaultBoardSize
	}

	return entity.GameState{
		BoardSize:       boardSize,
		Board:           make([]entity.Cell, boardSize*boardSize),
		CurrentTurn:     entity.ColorBlack,
		ColorAssignment: entity.NewColorAssignment(firstSeatColor),
	}
}

// Apply dispatches a client action to ApplyPlacement or ApplySkill.
func Apply(state entity.GameState, action entity.Action) (entity.GameState, error) {
	switch action.Type {
	case entity.ActionPlace:
		if action.X == nil || action.Y == nil {
			return state, refuse(OutOfBounds, "placement without coordinates")
		}
		return ApplyPlacement(state, action.Color, *action.X, *action.Y)
	case entity.ActionUseSkill:
		if action.Target == nil {
			return ApplySkill(state, action.Color, action.SkillID, entity.SkillTarget{})
		}
		return ApplySkill(state, action.Color, action.SkillID, *action.Target)
	default:
		return state, refuse(InvalidTarget, "unknown action type "+string(action.Type))
	}
}

// ApplyPlacement puts a stone of color at (x, y), passes the turn and records a winner if the
// placement completes a line.
func ApplyPlacement(state entity.GameState, color entity.Color, x, y int) (entity.GameState, error) {
	if state.IsFinished() {
		return state, refuse(GameAlreadyOver, "")
	}

	if color != state.CurrentTurn {
		return state, refuse(WrongTurn, "")
	}

	if !state.Inside(x, y) {
		return state, refuse(OutOfBounds, "")
	}

	if state.At(x, y) != entity.CellEmpty {
		return state, refuse(CellOccupied, "")
	}

	next := withBoard(state)
	next.Board[y*next.BoardSize+x] = color.Stone()
	next.CurrentTurn = color.Opponent()

	if result := CheckWinner(next); result != nil {
		next.Winner = &entity.Winner{
			Color:     result.Color,
			Seat:      next.ColorAssignment.SeatOf(result.Color),
			LineCells: result.LineCells,
		}
	}

	return next, nil
}

// ApplySkill uses a skill for the seat playing color. The turn does not pass.
func ApplySkill(state entity.GameState, color entity.Color, kind entity.SkillKind, target entity.SkillTarget) (entity.GameState, error) {
	if state.IsFinished() {
		return state, refuse(GameAlreadyOver, "")
	}

	if color != state.CurrentTurn {
		return state, refuse(WrongTurn, "")
	}

	if !kind.Valid() {
		return state, refuse(InvalidTarget, "unknown skill "+string(kind))
	}

	seat := state.ColorAssignment.SeatOf(color)
	if state.SkillUsage.Of(seat).Used(kind) {
		return state, refuse(SkillAlreadyUsed, string(kind))
	}

	if target.SkillID != kind {
		return state, refuse(InvalidTarget, "target shape does not match skill")
	}

	next := withBoard(state)

	switch kind {
	case entity.SkillFlySand:
		coord, ok := target.Cell()
		if !ok || !state.Inside(coord.X, coord.Y) {
			return state, refuse(InvalidTarget, "")
		}
		if state.At(coord.X, coord.Y) != color.Opponent().Stone() {
			return state, refuse(InvalidTarget, "target must be opponent stone")
		}
		next.Board[coord.Y*next.BoardSize+coord.X] = entity.CellEmpty

	case entity.SkillMountain:
		coord, ok := target.Cell()
		if !ok || !state.Inside(coord.X, coord.Y) {
			return state, refuse(InvalidTarget, "")
		}
		if state.At(coord.X, coord.Y) != entity.CellEmpty {
			return state, refuse(InvalidTarget, "target must be empty")
		}
		next.Board[coord.Y*next.BoardSize+coord.X] = entity.CellDamaged

	case entity.SkillCleaner:
		axis, index, ok := target.Line()
		if !ok || index < 0 || index >= state.BoardSize {
			return state, refuse(InvalidTarget, "")
		}
		clearLine(next, axis, index)
	}

	next.SkillUsage = state.SkillUsage.With(seat, kind)

	return next, nil
}

// clearLine empties every stone on a row or column. Damaged cells stay.
func clearLine(state entity.GameState, axis entity.Axis, index int) {
	for i := 0; i < state.BoardSize; i++ {
		x, y := i, index
		if axis == entity.AxisCol {
			x, y = index, i
		}

		pos := y*state.BoardSize + x
		if state.Board[pos] == entity.CellBlack || state.Board[pos] == entity.CellWhite {
			state.Board[pos] = entity.CellEmpty
		}
	}
}

// withBoard copies state with a board slice of its own.
func withBoard(state entity.GameState) entity.GameState {
	next := state
	next.Board = slices.Clone(state.Board)
	return next
}

package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const winLength = 5

// Serialize encodes a game state into its wire form.
func Serialize(state GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %w", err)
	}

	return data, nil
}

// Deserialize decodes and validates a game state from its wire form.
func Deserialize(data []byte) (GameState, error) {
	var state GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return GameState{}, fmt.Errorf("%w: %w", apperror.ErrInvalidState, err)
	}

	if err := state.Validate(); err != nil {
		return GameState{}, err
	}

	return state, nil
}

// Validate checks the structural invariants of a state.
func (that GameState) Validate() error {
	if that.BoardSize <= 0 {
		return fmt.Errorf("%w: board size %d", apperror.ErrInvalidState, that.BoardSize)
	}

	if len(that.Board) != that.BoardSize*that.BoardSize {
		return fmt.Errorf("%w: board has %d cells, want %d", apperror.ErrInvalidState, len(that.Board), that.BoardSize*that.BoardSize)
	}

	for i, cell := range that.Board {
		if cell < CellDamaged || cell > CellWhite {
			return fmt.Errorf("%w: cell %d has value %d", apperror.ErrInvalidState, i, cell)
		}
	}

	if !that.CurrentTurn.Valid() {
		return fmt.Errorf("%w: current turn %q", apperror.ErrInvalidState, that.CurrentTurn)
	}

	colors := that.ColorAssignment
	if !colors.First.Valid() || colors.Second != colors.First.Opponent() {
		return fmt.Errorf("%w: color assignment %v", apperror.ErrInvalidState, colors)
	}

	if that.Winner != nil {
		return that.validateWinner()
	}

	return nil
}

func (that GameState) validateWinner() error {
	winner := that.Winner
	if !winner.Color.Valid() || that.ColorAssignment.SeatOf(winner.Color) != winner.Seat {
		return fmt.Errorf("%w: winner %s/%s", apperror.ErrInvalidState, winner.Color, winner.Seat)
	}

	if len(winner.LineCells) != winLength {
		return fmt.Errorf("%w: winning line has %d cells", apperror.ErrInvalidState, len(winner.LineCells))
	}

	for _, c := range winner.LineCells {
		if !that.Inside(c.X, c.Y) {
			return fmt.Errorf("%w: winning cell (%d,%d) outside board", apperror.ErrInvalidState, c.X, c.Y)
		}
	}

	return nil
}

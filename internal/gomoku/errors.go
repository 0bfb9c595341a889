package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

// Reason is the closed set of ways a move can be refused.
type Reason int

const (
	GameAlreadyOver Reason = iota + 1
	WrongTurn
	OutOfBounds
	CellOccupied
	SkillAlreadyUsed
	InvalidTarget
)

func (that Reason) String() string {
	switch that {
	case GameAlreadyOver:
		return "GameAlreadyOver"
	case WrongTurn:
		return "WrongTurn"
	case OutOfBounds:
		return "OutOfBounds"
	case CellOccupied:
		return "CellOccupied"
	case SkillAlreadyUsed:
		return "SkillAlreadyUsed"
	case InvalidTarget:
		return "InvalidTarget"
	default:
		return fmt.Sprintf("Reason(%d)", int(that))
	}
}

// MoveError is returned by every engine function that refuses a move.
type MoveError struct {
	Reason Reason
	Detail string
}

func refuse(reason Reason, detail string) *MoveError {
	return &MoveError{Reason: reason, Detail: detail}
}

func (that *MoveError) Error() string {
	if that.Detail == "" {
		return that.Unwrap().Error()
	}
	return that.Unwrap().Error() + ": " + that.Detail
}

// Unwrap exposes the matching apperror sentinel.
func (that *MoveError) Unwrap() error {
	switch that.Reason {
	case GameAlreadyOver:
		return apperror.ErrGameFinished
	case WrongTurn:
		return apperror.ErrNotYourTurn
	case OutOfBounds:
		return apperror.ErrOutOfBoard
	case CellOccupied:
		return apperror.ErrCellOccupied
	case SkillAlreadyUsed:
		return apperror.ErrSkillUsed
	default:
		return apperror.ErrInvalidTarget
	}
}

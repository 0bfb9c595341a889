package apperror

import "errors"

// Engine failure reasons. The gomoku package wraps these so callers can match with errors.Is.
var (
	ErrGameFinished   = errors.New("game already ended")
	ErrNotYourTurn    = errors.New("not this color's turn")
	ErrOutOfBoard     = errors.New("out of board")
	ErrCellOccupied   = errors.New("cell is not empty")
	ErrSkillUsed      = errors.New("skill already used")
	ErrInvalidTarget  = errors.New("invalid target")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrInvalidMessage = errors.New("invalid message")
	ErrInvalidState   = errors.New("invalid game state")
)

// Room-lifecycle and auth errors surfaced to the requesting client.
var (
	ErrAuthRequired     = New(CodeAuthRequired, "authentication required")
	ErrAuthFailed       = New(CodeAuthFailed, "invalid username or password")
	ErrBlankCredentials = New(CodeAuthFailed, "username and password must not be empty")
	ErrTokenExpired     = New(CodeAuthFailed, "session is no longer valid, please log in again")
	ErrUserExists       = New(CodeUserExists, "username already taken")
	ErrRoomNotFound     = New(CodeRoomNotFound, "room not found")
	ErrRoomFull         = New(CodeRoomFull, "room is full")
	ErrAlreadyInRoom    = New(CodeAlreadyInRoom, "leave the current room first")
	ErrRoomLimit        = New(CodeRoomLimitReached, "room limit reached")
	ErrNotHost          = New(CodeNotHost, "only the host can start a rematch")
	ErrNotInRoom        = New(CodeInvalidAction, "not in a room")
	ErrGameNotStarted   = New(CodeInvalidAction, "game has not started")
	ErrSeatColor        = New(CodeNotYourTurn, "color does not match seat")
	ErrRematchSeats     = New(CodeInvalidAction, "both players must be in the room")
	ErrRematchNotOver   = New(CodeInvalidAction, "current game has not ended")
)

package protocol

import (
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	TypeAuthOK           Type = "authOk"
	TypeAuthError        Type = "authError"
	TypeLobbyState       Type = "lobbyState"
	TypeRoomCreated      Type = "roomCreated"
	TypeJoined           Type = "joined"
	TypeRoomState        Type = "roomState"
	TypeActionApplied    Type = "actionApplied"
	TypeActionRejected   Type = "actionRejected"
	TypePlayerLeft       Type = "playerLeft"
	TypeGameOver         Type = "gameOver"
	TypeRematchRequested Type = "rematchRequested"
	TypePong             Type = "pong"
	TypeError            Type = "error"
)

// Outbound is a message sent by the server.
type Outbound interface {
	Message
	outbound()
}

type AuthOK struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type AuthError struct {
	Code    apperror.Code `json:"code"`
	Message string        `json:"message"`
}

type LobbyState struct {
	MaxRooms int                  `json:"maxRooms"`
	Rooms    []entity.RoomSummary `json:"rooms"`
}

type RoomCreated struct {
	RoomID string `json:"roomId"`
}

type Joined struct {
	RoomID    string       `json:"roomId"`
	Seat      entity.Seat  `json:"seat"`
	Color     entity.Color `json:"color"`
	IsHost    bool         `json:"isHost"`
	Username  string       `json:"username"`
	SessionID string       `json:"sessionId,omitempty"`
}

type RoomState struct {
	RoomID   string           `json:"roomId"`
	Version  int              `json:"version"`
	State    entity.GameState `json:"state"`
	Players  []entity.Player  `json:"players"`
	ReadyMap entity.ReadyMap  `json:"readyMap"`
}

type ActionApplied struct {
	RoomID  string           `json:"roomId"`
	Seq     int              `json:"seq"`
	Version int              `json:"version"`
	Action  entity.Action    `json:"action"`
	State   entity.GameState `json:"state"`
}

type ActionRejected struct {
	RoomID  string        `json:"roomId"`
	Seq     int           `json:"seq"`
	Code    apperror.Code `json:"code"`
	Message string        `json:"message"`
}

type PlayerLeft struct {
	RoomID string      `json:"roomId"`
	Seat   entity.Seat `json:"seat"`
}

type GameOverWinner struct {
	Seat  entity.Seat  `json:"seat"`
	Color entity.Color `json:"color"`
}

type GameOver struct {
	RoomID  string           `json:"roomId"`
	Winner  GameOverWinner   `json:"winner"`
	Version int              `json:"version"`
	State   entity.GameState `json:"state"`
}

type RematchRequested struct {
	RoomID     string `json:"roomId"`
	SwapColors bool   `json:"swapColors"`
}

type Pong struct{}

type Error struct {
	Code    apperror.Code `json:"code"`
	Message string        `json:"message"`
}

// NewError builds an error message from an app error.
func NewError(err error) Error {
	return Error{Code: apperror.CodeOf(err), Message: apperror.MessageOf(err)}
}

// NewAuthError builds an authError message from an app error.
func NewAuthError(err error) AuthError {
	return AuthError{Code: apperror.CodeOf(err), Message: apperror.MessageOf(err)}
}

func (AuthOK) Kind() Type           { return TypeAuthOK }
func (AuthError) Kind() Type        { return TypeAuthError }
func (LobbyState) Kind() Type       { return TypeLobbyState }
func (RoomCreated) Kind() Type      { return TypeRoomCreated }
func (Joined) Kind() Type           { return TypeJoined }
func (RoomState) Kind() Type        { return TypeRoomState }
func (ActionApplied) Kind() Type    { return TypeActionApplied }
func (ActionRejected) Kind() Type   { return TypeActionRejected }
func (PlayerLeft) Kind() Type       { return TypePlayerLeft }
func (GameOver) Kind() Type         { return TypeGameOver }
func (RematchRequested) Kind() Type { return TypeRematchRequested }
func (Pong) Kind() Type             { return TypePong }
func (Error) Kind() Type            { return TypeError }

func (AuthOK) outbound()           {}
func (AuthError) outbound()        {}
func (LobbyState) outbound()       {}
func (RoomCreated) outbound()      {}
func (Joined) outbound()           {}
func (RoomState) outbound()        {}
func (ActionApplied) outbound()    {}
func (ActionRejected) outbound()   {}
func (PlayerLeft) outbound()       {}
func (GameOver) outbound()         {}
func (RematchRequested) outbound() {}
func (Pong) outbound()             {}
func (Error) outbound()            {}

package protocol

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// Type is the discriminating "type" field of every message.
type Type string

const (
	TypeRegister       Type = "register"
	TypeLogin          Type = "login"
	TypeAuthWithToken  Type = "authWithToken"
	TypeListRooms      Type = "listRooms"
	TypeCreateRoom     Type = "createRoom"
	TypeJoinRoom       Type = "joinRoom"
	TypeLeaveRoom      Type = "leaveRoom"
	TypeReady          Type = "ready"
	TypeActionIntent   Type = "actionIntent"
	TypeRematchRequest Type = "rematchRequest"
	TypePing           Type = "ping"
)

// Message is implemented by every inbound and outbound message.
type Message interface {
	Kind() Type
}

// Inbound is a message sent by a client.
type Inbound interface {
	Message
	inbound()
}

type Register struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthWithToken struct {
	Token string `json:"token"`
}

type ListRooms struct{}

type CreateRoom struct {
	PreferredColor entity.Color `json:"preferredColor" validate:"omitempty,oneof=black white"`
}

// JoinRoom carries PlayerName and SessionID only in the guest flow.
type JoinRoom struct {
	RoomID     string `json:"roomId"               validate:"required,max=64"`
	PlayerName string `json:"playerName,omitempty" validate:"max=32"`
	SessionID  string `json:"sessionId,omitempty"`
}

type LeaveRoom struct {
	RoomID string `json:"roomId"`
}

type Ready struct {
	RoomID string `json:"roomId"`
}

type ActionIntent struct {
	RoomID string         `json:"roomId"`
	Seq    int            `json:"seq"`
	Action *entity.Action `json:"action" validate:"required"`
}

type RematchRequest struct {
	RoomID     string `json:"roomId"`
	SwapColors bool   `json:"swapColors"`
}

type Ping struct{}

func (Register) Kind() Type       { return TypeRegister }
func (Login) Kind() Type          { return TypeLogin }
func (AuthWithToken) Kind() Type  { return TypeAuthWithToken }
func (ListRooms) Kind() Type      { return TypeListRooms }
func (CreateRoom) Kind() Type     { return TypeCreateRoom }
func (JoinRoom) Kind() Type       { return TypeJoinRoom }
func (LeaveRoom) Kind() Type      { return TypeLeaveRoom }
func (Ready) Kind() Type          { return TypeReady }
func (ActionIntent) Kind() Type   { return TypeActionIntent }
func (RematchRequest) Kind() Type { return TypeRematchRequest }
func (Ping) Kind() Type           { return TypePing }

func (Register) inbound()       {}
func (Login) inbound()          {}
func (AuthWithToken) inbound()  {}
func (ListRooms) inbound()      {}
func (CreateRoom) inbound()     {}
func (JoinRoom) inbound()       {}
func (LeaveRoom) inbound()      {}
func (Ready) inbound()          {}
func (ActionIntent) inbound()   {}
func (RematchRequest) inbound() {}
func (Ping) inbound()           {}

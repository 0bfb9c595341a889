package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

var validate = validator.New()

type envelope struct {
	Type Type `json:"type"`
}

var inboundDecoders = map[Type]func([]byte) (Inbound, error){
	TypeRegister:       decodeInbound[Register],
	TypeLogin:          decodeInbound[Login],
	TypeAuthWithToken:  decodeInbound[AuthWithToken],
	TypeListRooms:      decodeInbound[ListRooms],
	TypeCreateRoom:     decodeInbound[CreateRoom],
	TypeJoinRoom:       decodeInbound[JoinRoom],
	TypeLeaveRoom:      decodeInbound[LeaveRoom],
	TypeReady:          decodeInbound[Ready],
	TypeActionIntent:   decodeInbound[ActionIntent],
	TypeRematchRequest: decodeInbound[RematchRequest],
	TypePing:           decodeInbound[Ping],
}

var outboundDecoders = map[Type]func([]byte) (Outbound, error){
	TypeAuthOK:           decodeOutbound[AuthOK],
	TypeAuthError:        decodeOutbound[AuthError],
	TypeLobbyState:       decodeOutbound[LobbyState],
	TypeRoomCreated:      decodeOutbound[RoomCreated],
	TypeJoined:           decodeOutbound[Joined],
	TypeRoomState:        decodeOutbound[RoomState],
	TypeActionApplied:    decodeOutbound[ActionApplied],
	TypeActionRejected:   decodeOutbound[ActionRejected],
	TypePlayerLeft:       decodeOutbound[PlayerLeft],
	TypeGameOver:         decodeOutbound[GameOver],
	TypeRematchRequested: decodeOutbound[RematchRequested],
	TypePong:             decodeOutbound[Pong],
	TypeError:            decodeOutbound[Error],
}

// Decode parses and validates a client message. Any failure wraps apperror.ErrInvalidMessage.
func Decode(data []byte) (Inbound, error) {
	kind, err := peekType(data)
	if err != nil {
		return nil, err
	}

	decoder, ok := inboundDecoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", apperror.ErrInvalidMessage, kind)
	}

	return decoder(data)
}

// DecodeOutbound parses a server message.
func DecodeOutbound(data []byte) (Outbound, error) {
	kind, err := peekType(data)
	if err != nil {
		return nil, err
	}

	decoder, ok := outboundDecoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", apperror.ErrInvalidMessage, kind)
	}

	return decoder(data)
}

// Encode marshals msg with its "type" field.
func Encode(msg Message) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", msg.Kind(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("failed to reshape %s: %w", msg.Kind(), err)
	}

	kind, err := json.Marshal(msg.Kind())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal type: %w", err)
	}
	fields["type"] = kind

	return json.Marshal(fields)
}

func peekType(data []byte) (Type, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return "", fmt.Errorf("%w: %w", apperror.ErrInvalidMessage, err)
	}

	if env.Type == "" {
		return "", fmt.Errorf("%w: missing type", apperror.ErrInvalidMessage)
	}

	return env.Type, nil
}

func decodeInbound[T Inbound](data []byte) (Inbound, error) {
	msg, err := decodeInto[T](data)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func decodeOutbound[T Outbound](data []byte) (Outbound, error) {
	msg, err := decodeInto[T](data)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func decodeInto[T Message](data []byte) (T, error) {
	var msg T
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("%w: %w", apperror.ErrInvalidMessage, err)
	}

	if err := validate.Struct(msg); err != nil {
		return msg, fmt.Errorf("%w: %s: %w", apperror.ErrInvalidMessage, msg.Kind(), err)
	}

	return msg, nil
}

package apperror

import "errors"

// Code is the error code carried by error, authError and actionRejected messages.
type Code string

const (
	CodeAuthRequired     Code = "AuthRequired"
	CodeAuthFailed       Code = "AuthFailed"
	CodeUserExists       Code = "UserExists"
	CodeRoomNotFound     Code = "RoomNotFound"
	CodeRoomFull         Code = "RoomFull"
	CodeAlreadyInRoom    Code = "AlreadyInRoom"
	CodeRoomLimitReached Code = "RoomLimitReached"
	CodeNotHost          Code = "NotHost"
	CodeNotYourTurn      Code = "NotYourTurn"
	CodeSkillUsed        Code = "SkillUsed"
	CodeInvalidTarget    Code = "InvalidTarget"
	CodeCellOccupied     Code = "CellOccupied"
	CodeInvalidAction    Code = "InvalidAction"
	CodeInternal         Code = "Internal"
)

// Error is an error with a wire code. Values are compared by identity, so the package-level
// variables work as sentinels.
type Error struct {
	Code    Code
	Message string
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (that *Error) Error() string {
	return that.Message
}

// CodeOf returns the wire code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeInternal
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return "internal error"
}

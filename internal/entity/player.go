package entity

// Seat is one of the two fixed match slots.
type Seat string

const (
	SeatFirst  Seat = "first"
	SeatSecond Seat = "second"
)

// Seats lists both seats in their canonical order.
var Seats = [2]Seat{SeatFirst, SeatSecond}

func (that Seat) Valid() bool {
	return that == SeatFirst || that == SeatSecond
}

// Index returns 0 for the first seat and 1 for the second.
func (that Seat) Index() int {
	if that == SeatSecond {
		return 1
	}
	return 0
}

func (that Seat) Other() Seat {
	if that == SeatSecond {
		return SeatFirst
	}
	return SeatSecond
}

// Player is the public view of an occupied seat.
type Player struct {
	Seat   Seat   `json:"seat"`
	Name   string `json:"name"`
	Color  Color  `json:"color"`
	Online bool   `json:"online"`
	IsHost bool   `json:"isHost"`
}

// ReadyMap reports readiness per seat.
type ReadyMap struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
}

// RoomStatus is the lobby view of a room's progress.
type RoomStatus string

const (
	RoomWaiting  RoomStatus = "waiting"
	RoomPlaying  RoomStatus = "playing"
	RoomFinished RoomStatus = "finished"
)

// RoomSummary is one lobby entry.
type RoomSummary struct {
	RoomID    string     `json:"roomId"`
	HostName  string     `json:"hostName"`
	HostColor Color      `json:"hostColor"`
	Players   int        `json:"players"`
	Status    RoomStatus `json:"status"`
}

// Account is a registered username and its password.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

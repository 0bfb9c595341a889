package usecase

import (
	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

// occupant is a player holding a seat. client is nil while the player is disconnected.
type occupant struct {
	credential string
	name       string
	online     bool
	ready      bool
	vote       bool

	client   *Client
	eviction *clock.Timer
}

func (that *occupant) cancelEviction() {
	if that.eviction != nil {
		that.eviction.Stop()
		that.eviction = nil
	}
}

type room struct {
	id      string
	version int
	game    entity.GameState
	seats   [2]*occupant
	host    entity.Seat
}

func newRoom(id string, firstSeatColor entity.Color) *room {
	return &room{
		id:      id,
		version: 1,
		game:    gomoku.Init(entity.DefaultBoardSize, firstSeatColor),
		host:    entity.SeatFirst,
	}
}

func (that *room) seat(s entity.Seat) *occupant {
	return that.seats[s.Index()]
}

// seatOf finds the seat held by credential.
func (that *room) seatOf(credential string) (entity.Seat, bool) {
	for _, s := range entity.Seats {
		if p := that.seat(s); p != nil && p.credential == credential {
			return s, true
		}
	}

	return "", false
}

func (that *room) openSeat() (entity.Seat, bool) {
	for _, s := range entity.Seats {
		if that.seat(s) == nil {
			return s, true
		}
	}

	return "", false
}

func (that *room) occupants() int {
	n := 0
	for _, p := range that.seats {
		if p != nil {
			n++
		}
	}

	return n
}

func (that *room) isEmpty() bool {
	return that.occupants() == 0
}

func (that *room) isFull() bool {
	return that.occupants() == len(that.seats)
}

func (that *room) bothReady() bool {
	for _, p := range that.seats {
		if p == nil || !p.ready {
			return false
		}
	}

	return true
}

func (that *room) clearVotes() {
	for _, p := range that.seats {
		if p != nil {
			p.vote = false
		}
	}
}

func (that *room) status() entity.RoomStatus {
	switch {
	case that.game.IsFinished():
		return entity.RoomFinished
	case that.bothReady():
		return entity.RoomPlaying
	default:
		return entity.RoomWaiting
	}
}

func (that *room) summary() entity.RoomSummary {
	hostName := "-"
	if host := that.seat(that.host); host != nil {
		hostName = host.name
	}

	return entity.RoomSummary{
		RoomID:    that.id,
		HostName:  hostName,
		HostColor: that.game.ColorAssignment.Of(that.host),
		Players:   that.occupants(),
		Status:    that.status(),
	}
}

func (that *room) snapshot() protocol.RoomState {
	players := make([]entity.Player, 0, len(that.seats))
	ready := entity.ReadyMap{}

	for _, s := range entity.Seats {
		p := that.seat(s)
		if p == nil {
			continue
		}

		players = append(players, entity.Player{
			Seat:   s,
			Name:   p.name,
			Color:  that.game.ColorAssignment.Of(s),
			Online: p.online,
			IsHost: that.host == s,
		})

		if s == entity.SeatFirst {
			ready.First = p.ready
		} else {
			ready.Second = p.ready
		}
	}

	return protocol.RoomState{
		RoomID:   that.id,
		Version:  that.version,
		State:    that.game,
		Players:  players,
		ReadyMap: ready,
	}
}

// broadcast sends msg to every seat with a live connection.
func (that *room) broadcast(msg protocol.Outbound) {
	for _, p := range that.seats {
		if p != nil && p.client != nil {
			p.client.Send(msg)
		}
	}
}

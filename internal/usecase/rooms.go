package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

func (that *Manager) createRoom(_ context.Context, client *Client, msg protocol.CreateRoom) {
	log := that.logger.With("method", "createRoom")

	if _, ok := that.seated[client.identity.credential]; ok {
		client.Send(protocol.NewError(apperror.ErrAlreadyInRoom))
		return
	}

	if len(that.rooms) >= MaxRooms {
		client.Send(protocol.NewError(apperror.ErrRoomLimit))
		return
	}

	r, err := that.openRoom(that.allocateRoomID(), msg.PreferredColor)
	if err != nil {
		client.Send(protocol.NewError(err))
		return
	}

	that.seatNew(r, entity.SeatFirst, client)
	log.Info("room created", "roomID", r.id, "host", client.identity.name)

	client.Send(protocol.RoomCreated{RoomID: r.id})
	that.sendJoined(r, entity.SeatFirst, client)
	that.broadcastLobby()
	r.broadcast(r.snapshot())
}

func (that *Manager) joinRoom(_ context.Context, client *Client, msg protocol.JoinRoom) {
	log := that.logger.With("method", "joinRoom")

	if client.identity == nil {
		if strings.TrimSpace(msg.PlayerName) == "" {
			client.Send(protocol.NewError(apperror.ErrAuthRequired))
			return
		}
		that.authenticateGuest(client, msg.PlayerName, msg.SessionID)
	}

	credential := client.identity.credential

	r, ok := that.rooms[msg.RoomID]
	if !ok && !client.identity.guest {
		client.Send(protocol.NewError(apperror.ErrRoomNotFound))
		return
	}

	if roomID, seated := that.seated[credential]; seated && roomID != msg.RoomID {
		client.Send(protocol.NewError(apperror.ErrAlreadyInRoom))
		return
	}

	if !ok {
		created, err := that.openRoom(msg.RoomID, entity.ColorBlack)
		if err != nil {
			client.Send(protocol.NewError(err))
			return
		}
		r = created
		log.Info("room created by guest join", "roomID", r.id, "host", client.identity.name)
	}

	if s, reclaim := r.seatOf(credential); reclaim {
		p := r.seat(s)
		p.cancelEviction()
		p.client = client
		p.online = true
		log.Info("seat reclaimed", "roomID", r.id, "seat", s)

		that.sendJoined(r, s, client)
		r.broadcast(r.snapshot())
		that.broadcastLobby()
		return
	}

	s, open := r.openSeat()
	if !open {
		client.Send(protocol.NewError(apperror.ErrRoomFull))
		return
	}

	that.seatNew(r, s, client)
	log.Info("player joined", "roomID", r.id, "seat", s, "name", client.identity.name)

	that.sendJoined(r, s, client)
	r.broadcast(r.snapshot())
	that.broadcastLobby()
}

func (that *Manager) leaveRoom(_ context.Context, client *Client, _ protocol.LeaveRoom) {
	r, s, ok := that.seatOf(client)
	if !ok {
		return
	}

	that.logger.Info("player left", "method", "leaveRoom", "roomID", r.id, "seat", s)
	that.vacate(r, s)
}

// disconnect marks the seat of client offline and schedules its eviction. It does nothing when
// client is not the seat's current connection. Called with mu held.
func (that *Manager) disconnect(client *Client) {
	r, s, ok := that.seatOf(client)
	if !ok {
		return
	}

	p := r.seat(s)
	if p.client != client {
		return
	}

	p.client = nil
	p.online = false
	p.cancelEviction()

	roomID := r.id
	var timer *clock.Timer
	timer = that.clock.AfterFunc(ReconnectGrace, func() {
		that.evict(roomID, s, timer)
	})
	p.eviction = timer

	that.logger.Info("player disconnected", "method", "disconnect", "roomID", r.id, "seat", s)

	r.broadcast(protocol.PlayerLeft{RoomID: r.id, Seat: s})
	r.broadcast(r.snapshot())
	that.broadcastLobby()
}

// evict vacates a seat whose grace period ran out, unless the timer was cancelled meanwhile.
func (that *Manager) evict(roomID string, s entity.Seat, timer *clock.Timer) {
	that.mu.Lock()
	defer that.mu.Unlock()

	r, ok := that.rooms[roomID]
	if !ok {
		return
	}

	p := r.seat(s)
	if p == nil || p.eviction != timer {
		return
	}

	p.eviction = nil
	that.logger.Info("seat evicted", "method", "evict", "roomID", roomID, "seat", s)
	that.vacate(r, s)
}

// vacate empties seat s, then destroys the room or hands the host role over. Called with mu held.
func (that *Manager) vacate(r *room, s entity.Seat) {
	p := r.seat(s)
	p.cancelEviction()
	delete(that.seated, p.credential)
	r.seats[s.Index()] = nil

	if r.isEmpty() {
		delete(that.rooms, r.id)
		that.logger.Info("room closed", "roomID", r.id)
		that.broadcastLobby()
		return
	}

	if r.host == s {
		r.host = s.Other()
	}

	r.broadcast(protocol.PlayerLeft{RoomID: r.id, Seat: s})
	r.broadcast(r.snapshot())
	that.broadcastLobby()
}

// openRoom registers a new room under id. Called with mu held.
func (that *Manager) openRoom(id string, firstSeatColor entity.Color) (*room, error) {
	if len(that.rooms) >= MaxRooms {
		return nil, fmt.Errorf("open %s: %w", id, apperror.ErrRoomLimit)
	}

	r := newRoom(id, firstSeatColor)
	that.rooms[id] = r

	return r, nil
}

// allocateRoomID returns the next unused room-N id. Called with mu held.
func (that *Manager) allocateRoomID() string {
	for {
		id := fmt.Sprintf("room-%d", that.nextRoom)
		that.nextRoom++

		if _, taken := that.rooms[id]; !taken {
			return id
		}
	}
}

// seatNew puts client's identity into the open seat s with readiness cleared.
func (that *Manager) seatNew(r *room, s entity.Seat, client *Client) {
	r.seats[s.Index()] = &occupant{
		credential: client.identity.credential,
		name:       client.identity.name,
		online:     true,
		client:     client,
	}
	that.seated[client.identity.credential] = r.id
}

func (that *Manager) sendJoined(r *room, s entity.Seat, client *Client) {
	joined := protocol.Joined{
		RoomID:   r.id,
		Seat:     s,
		Color:    r.game.ColorAssignment.Of(s),
		IsHost:   r.host == s,
		Username: client.identity.name,
	}

	if client.identity.guest {
		joined.SessionID = client.identity.credential
	}

	client.Send(joined)
}

package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

func (that *Manager) listRooms(_ context.Context, client *Client, _ protocol.ListRooms) {
	client.Send(that.lobbyState())
}

// ListRooms returns the lobby summary of every live room ordered by id.
func (that *Manager) ListRooms() []entity.RoomSummary {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lobbyState().Rooms
}

// lobbyState is called with mu held.
func (that *Manager) lobbyState() protocol.LobbyState {
	rooms := make([]entity.RoomSummary, 0, len(that.rooms))
	for _, r := range that.rooms {
		rooms = append(rooms, r.summary())
	}

	slices.SortFunc(rooms, func(a, b entity.RoomSummary) int {
		return strings.Compare(a.RoomID, b.RoomID)
	})

	return protocol.LobbyState{MaxRooms: MaxRooms, Rooms: rooms}
}

// broadcastLobby sends the lobby to every authenticated client that holds no seat. Called with
// mu held.
func (that *Manager) broadcastLobby() {
	state := that.lobbyState()

	for client := range that.clients {
		if client.identity == nil {
			continue
		}

		if _, seated := that.seated[client.identity.credential]; seated {
			continue
		}

		client.Send(state)
	}
}

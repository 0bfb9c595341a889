package usecase

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/protocol"
)

func (that *Manager) ready(_ context.Context, client *Client, _ protocol.Ready) {
	r, s, ok := that.seatOf(client)
	if !ok {
		client.Send(protocol.NewError(apperror.ErrNotInRoom))
		return
	}

	wasReady := r.bothReady()
	r.seat(s).ready = true

	if !wasReady && r.bothReady() {
		r.game = gomoku.Init(r.game.BoardSize, r.game.ColorAssignment.First)
		r.clearVotes()
		r.version++

		that.logger.Info("match started", "method", "ready", "roomID", r.id, "version", r.version)
		r.broadcast(r.snapshot())
		that.broadcastLobby()
		return
	}

	r.broadcast(r.snapshot())
}

func (that *Manager) dispatchAction(_ context.Context, client *Client, msg protocol.ActionIntent) {
	log := that.logger.With("method", "dispatchAction")

	r, s, ok := that.seatOf(client)
	if !ok {
		client.Send(protocol.NewError(apperror.ErrNotInRoom))
		return
	}

	reject := func(err error) {
		client.Send(protocol.ActionRejected{
			RoomID:  r.id,
			Seq:     msg.Seq,
			Code:    rejectionCode(err),
			Message: err.Error(),
		})
	}

	if !r.bothReady() {
		reject(apperror.ErrGameNotStarted)
		return
	}

	action := *msg.Action
	if action.Color != r.game.ColorAssignment.Of(s) {
		reject(apperror.ErrSeatColor)
		return
	}

	next, err := gomoku.Apply(r.game, action)
	if err != nil {
		log.Debug("action rejected", "roomID", r.id, "seat", s, "seq", msg.Seq, "error", err)
		reject(err)
		return
	}

	r.game = next
	r.version++
	r.clearVotes()

	r.broadcast(protocol.ActionApplied{
		RoomID:  r.id,
		Seq:     msg.Seq,
		Version: r.version,
		Action:  action,
		State:   r.game,
	})

	if winner := r.game.Winner; winner != nil {
		log.Info("game over", "roomID", r.id, "winner", winner.Seat, "version", r.version)

		r.broadcast(protocol.GameOver{
			RoomID:  r.id,
			Winner:  protocol.GameOverWinner{Seat: winner.Seat, Color: winner.Color},
			Version: r.version,
			State:   r.game,
		})
		that.broadcastLobby()
	}
}

func (that *Manager) requestRematch(_ context.Context, client *Client, msg protocol.RematchRequest) {
	r, s, ok := that.seatOf(client)
	if !ok {
		client.Send(protocol.NewError(apperror.ErrNotInRoom))
		return
	}

	if r.host != s {
		r.seat(s).vote = true
		client.Send(protocol.NewError(apperror.ErrNotHost))
		return
	}

	if !r.isFull() {
		client.Send(protocol.NewError(apperror.ErrRematchSeats))
		return
	}

	if !r.game.IsFinished() {
		client.Send(protocol.NewError(apperror.ErrRematchNotOver))
		return
	}

	colors := r.game.ColorAssignment
	if msg.SwapColors {
		colors = colors.Swapped()
	}

	r.game = gomoku.Init(r.game.BoardSize, colors.First)
	for _, p := range r.seats {
		p.ready = true
	}
	r.clearVotes()
	r.version++

	that.logger.Info("rematch started", "method", "requestRematch", "roomID", r.id, "swapColors", msg.SwapColors, "version", r.version)

	r.broadcast(protocol.RematchRequested{RoomID: r.id, SwapColors: msg.SwapColors})
	r.broadcast(r.snapshot())
	that.broadcastLobby()
}

// rejectionCode maps an action failure to its wire code.
func rejectionCode(err error) apperror.Code {
	var moveErr *gomoku.MoveError
	if !errors.As(err, &moveErr) {
		return apperror.CodeOf(err)
	}

	switch moveErr.Reason {
	case gomoku.WrongTurn:
		return apperror.CodeNotYourTurn
	case gomoku.SkillAlreadyUsed:
		return apperror.CodeSkillUsed
	case gomoku.InvalidTarget:
		return apperror.CodeInvalidTarget
	case gomoku.CellOccupied:
		return apperror.CodeCellOccupied
	case gomoku.GameAlreadyOver, gomoku.OutOfBounds:
		return apperror.CodeInvalidAction
	default:
		return apperror.CodeInvalidAction
	}
}

package room

import (
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
)

const (
	maxRoomSeedLen    = 32
	maxPlayersAllowed = 100
)

// The guard functions below validate one lifecycle transition each
// against the currently persisted room state. They are pure: the service
// runs them inside a transaction holding a row lock on the room, so a
// passing guard stays valid until commit.

func validateCreate(roomSeed string, maxPlayers uint16) error {
	if maxPlayers <= 1 {
		return errInvalidMaxPlayers
	}
	if maxPlayers > maxPlayersAllowed {
		return errMaxPlayersLimit
	}
	if len(roomSeed) == 0 || len(roomSeed) > maxRoomSeedLen {
		return errInvalidRoomSeed
	}
	return nil
}

func canJoin(r *model.Room, roster []string, player string) error {
	switch r.Status {
	case model.RoomOpenForJoining:
	case model.RoomCreated, model.RoomInProgress, model.RoomFinished, model.RoomCancelled:
		return errRoomNotJoinable
	default:
		return errRoomNotJoinable
	}
	if len(roster) >= int(r.MaxPlayers) {
		return errRoomFull
	}
	for _, joined := range roster {
		if joined == player {
			return errPlayerAlreadyJoined
		}
	}
	return nil
}

func canAnnounceWinner(r *model.Room, roster []string, caller string, winner string) error {
	if caller != r.Creator {
		return errUnauthorized
	}
	switch r.Status {
	case model.RoomInProgress:
	case model.RoomCreated, model.RoomOpenForJoining, model.RoomFinished, model.RoomCancelled:
		return errRoomNotInProgress
	default:
		return errRoomNotInProgress
	}
	for _, joined := range roster {
		if joined == winner {
			return nil
		}
	}
	return errWinnerNotMember
}

func canCancel(r *model.Room, playerCount int, caller string) error {
	if caller != r.Creator {
		return errUnauthorized
	}
	switch r.Status {
	case model.RoomCreated, model.RoomOpenForJoining:
	case model.RoomInProgress, model.RoomFinished, model.RoomCancelled:
		return errCannotCancelState
	default:
		return errCannotCancelState
	}
	if playerCount > 0 {
		return errCancelPlayersJoined
	}
	return nil
}

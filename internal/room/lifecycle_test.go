package room

import (
	"strings"
	"testing"

	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openRoom(maxPlayers uint16) *model.Room {
	return &model.Room{
		Creator:    "0xcreator",
		RoomSeed:   "seed",
		Status:     model.RoomOpenForJoining,
		MaxPlayers: maxPlayers,
	}
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name       string
		roomSeed   string
		maxPlayers uint16
		expected   error
	}{
		{"valid", "my-room", 2, nil},
		{"valid at player cap", "my-room", 100, nil},
		{"valid at seed cap", strings.Repeat("s", 32), 2, nil},
		{"zero players", "my-room", 0, errInvalidMaxPlayers},
		{"single player", "my-room", 1, errInvalidMaxPlayers},
		{"over player cap", "my-room", 101, errMaxPlayersLimit},
		{"empty seed", "", 2, errInvalidRoomSeed},
		{"seed too long", strings.Repeat("s", 33), 2, errInvalidRoomSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreate(tt.roomSeed, tt.maxPlayers)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestCanJoinOnlyWhenOpen(t *testing.T) {
	statuses := map[model.RoomStatus]error{
		model.RoomOpenForJoining: nil,
		model.RoomCreated:        errRoomNotJoinable,
		model.RoomInProgress:     errRoomNotJoinable,
		model.RoomFinished:       errRoomNotJoinable,
		model.RoomCancelled:      errRoomNotJoinable,
	}

	for status, expected := range statuses {
		r := openRoom(3)
		r.Status = status
		err := canJoin(r, nil, "0xplayer")
		if expected == nil {
			assert.NoError(t, err, "status %s", status)
		} else {
			assert.ErrorIs(t, err, expected, "status %s", status)
		}
	}
}

func TestCanJoinFullRoom(t *testing.T) {
	r := openRoom(2)
	roster := []string{"0xone", "0xtwo"}
	assert.ErrorIs(t, canJoin(r, roster, "0xthree"), errRoomFull)
}

func TestCanJoinTwiceRejected(t *testing.T) {
	r := openRoom(3)
	roster := []string{"0xone"}
	assert.ErrorIs(t, canJoin(r, roster, "0xone"), errPlayerAlreadyJoined)
	assert.NoError(t, canJoin(r, roster, "0xtwo"))
}

func TestCanAnnounceWinner(t *testing.T) {
	roster := []string{"0xone", "0xtwo"}

	r := openRoom(2)
	r.Status = model.RoomInProgress
	require.NoError(t, canAnnounceWinner(r, roster, "0xcreator", "0xtwo"))

	assert.ErrorIs(t, canAnnounceWinner(r, roster, "0xone", "0xtwo"), errUnauthorized)
	assert.ErrorIs(t, canAnnounceWinner(r, roster, "0xcreator", "0xcreator"), errWinnerNotMember)

	for _, status := range []model.RoomStatus{
		model.RoomCreated,
		model.RoomOpenForJoining,
		model.RoomFinished,
		model.RoomCancelled,
	} {
		r.Status = status
		assert.ErrorIs(t, canAnnounceWinner(r, roster, "0xcreator", "0xtwo"), errRoomNotInProgress, "status %s", status)
	}
}

func TestCanCancel(t *testing.T) {
	r := openRoom(2)
	require.NoError(t, canCancel(r, 0, "0xcreator"))

	r.Status = model.RoomCreated
	require.NoError(t, canCancel(r, 0, "0xcreator"))

	assert.ErrorIs(t, canCancel(r, 0, "0xsomeone"), errUnauthorized)

	r.Status = model.RoomOpenForJoining
	assert.ErrorIs(t, canCancel(r, 1, "0xcreator"), errCancelPlayersJoined)

	for _, status := range []model.RoomStatus{
		model.RoomInProgress,
		model.RoomFinished,
		model.RoomCancelled,
	} {
		r.Status = status
		assert.ErrorIs(t, canCancel(r, 0, "0xcreator"), errCannotCancelState, "status %s", status)
	}
}

package room

import "github.com/palapa-fun/rooms-backend/internal/pkg/model"

type CreateRoomRequest struct {
	RoomSeed   string `json:"roomSeed"`
	MaxPlayers uint16 `json:"maxPlayers"`
	EntryFee   uint64 `json:"entryFee"`
}

type AnnounceWinnerRequest struct {
	Winner string `json:"winner"`
}

type RoomResponse struct {
	model.Room
	Players []string `json:"players"`
}

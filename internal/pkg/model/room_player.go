package model

// RoomPlayer is one roster slot. Position preserves join order;
// (room_id, address) is unique so a player cannot join twice.
type RoomPlayer struct {
	Id       uint64 `gorm:"primaryKey" json:"id"`
	RoomId   uint64 `gorm:"uniqueIndex:idx_room_player" json:"roomId"`
	Address  string `gorm:"uniqueIndex:idx_room_player" json:"address"`
	Position int    `json:"position"`
	JoinedAt int64  `json:"joinedAt"`
}

func (RoomPlayer) TableName() string {
	return "room_player"
}

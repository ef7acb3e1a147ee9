package model

type Room struct {
	Id                uint64     `gorm:"primaryKey" json:"id"`
	Address           string     `json:"address"`
	CustodyAddress    string     `json:"custodyAddress"`
	Creator           string     `json:"creator"`
	RoomSeed          string     `json:"roomSeed"`
	Status            RoomStatus `json:"status"`
	MaxPlayers        uint16     `json:"maxPlayers"`
	EntryFee          uint64     `json:"entryFee"`
	Winner            *string    `json:"winner,omitempty"`
	CreationTimestamp int64      `json:"creationTimestamp"`
	EndTimestamp      *int64     `json:"endTimestamp,omitempty"`
}

func (Room) TableName() string {
	return "room"
}

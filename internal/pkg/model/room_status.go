package model

// RoomStatus is the room lifecycle state. Rooms move
// CREATED/OPEN_FOR_JOINING -> IN_PROGRESS -> FINISHED, or are cancelled
// before any player joins. FINISHED and CANCELLED are terminal.
type RoomStatus string

const (
	RoomCreated        RoomStatus = "CREATED"
	RoomOpenForJoining RoomStatus = "OPEN_FOR_JOINING"
	RoomInProgress     RoomStatus = "IN_PROGRESS"
	RoomFinished       RoomStatus = "FINISHED"
	RoomCancelled      RoomStatus = "CANCELLED"
)

func (s RoomStatus) Terminal() bool {
	return s == RoomFinished || s == RoomCancelled
}

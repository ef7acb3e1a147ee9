package room

import (
	"github.com/google/uuid"
	"github.com/palapa-fun/rooms-backend/internal/pkg/pubsub"
	"github.com/palapa-fun/rooms-backend/internal/pkg/ws"
)

const (
	eventRoomCreated   = "room.created"
	eventRoomJoined    = "room.joined"
	eventRoomStarted   = "room.started"
	eventRoomFinished  = "room.finished"
	eventRoomCancelled = "room.cancelled"
)

type RoomEvent struct {
	Id          string  `json:"id"`
	Type        string  `json:"type"`
	RoomAddress string  `json:"roomAddress"`
	Player      *string `json:"player,omitempty"`
	Winner      *string `json:"winner,omitempty"`
	Timestamp   int64   `json:"timestamp"`
}

func (RoomEvent) GetEventTopicName() string {
	return "palapa.room.events"
}

type eventNotifier struct {
	hub *ws.WebSocketNotificationHub
}

func (n *eventNotifier) notify(eventType string, roomAddress string, timestamp int64, player *string, winner *string) {
	event := RoomEvent{
		Id:          uuid.New().String(),
		Type:        eventType,
		RoomAddress: roomAddress,
		Player:      player,
		Winner:      winner,
		Timestamp:   timestamp,
	}
	pubsub.Publish(event)
	if n.hub != nil {
		n.hub.Publish(roomAddress, event)
	}
}

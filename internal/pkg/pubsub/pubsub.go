package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/jpillora/backoff"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ctx context.Context
var client *pubsub.Client

// Publishable is any event that knows which topic it belongs on.
type Publishable interface {
	GetEventTopicName() string
}

// InitPubSub connects to Google Cloud Pub/Sub. With no project id
// configured the package stays disabled and Publish becomes a no-op,
// which is what local runs and tests want.
func InitPubSub() {
	projectID := viper.GetString("GOOGLE_PROJECT_ID")
	if projectID == "" {
		log.Info().Msg("No GOOGLE_PROJECT_ID configured, pubsub disabled")
		return
	}
	ctx = context.Background()
	var err error
	client, err = pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing pub sub connection")
		return
	}
	log.Info().Msg("Successful pubsub init")
}

func Subscribe(subscriptionHandler SubscriptionHandler) {
	if client == nil {
		return
	}
	sub := client.Subscription(subscriptionHandler.SubscriptionId)
	err := sub.Receive(ctx, subscriptionHandler.Handler)
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Subscriber error for sub id %s", subscriptionHandler.SubscriptionId))
	}
}

func Publish(message Publishable) {
	if client == nil {
		return
	}

	t := getTopic(message.GetEventTopicName())
	data := encodeMessage(message)

	go func() {
		defer t.Stop()

		b := &backoff.Backoff{
			Min:    250 * time.Millisecond,
			Max:    10 * time.Second,
			Jitter: true,
		}

		for b.Attempt() < 5 {
			result := t.Publish(ctx, &pubsub.Message{Data: data})
			if _, err := result.Get(ctx); err == nil {
				return
			}
			time.Sleep(b.Duration())
		}
		log.Warn().Msg(fmt.Sprintf("Failed to publish message for %s", message.GetEventTopicName()))
	}()
}

func CloseClient() {
	if client != nil {
		client.Close()
	}
}

func getTopic(topicName string) *pubsub.Topic {
	t := client.Topic(topicName)
	if t == nil {
		log.Info().Msg(fmt.Sprintf("Topic %s does not exist. Creating new", topicName))
		nt, err := client.CreateTopic(ctx, topicName)
		if err != nil {
			log.Error().Err(err).Msg(fmt.Sprintf("Cant create topic %s", topicName))
		}
		return nt
	}
	return t
}

func encodeMessage(message any) []byte {
	bytes, err := json.Marshal(message)
	if err != nil {
		log.Warn().Err(err).Msg("Cannot encode pubsub message")
		return nil
	}
	return bytes
}

package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Logical signals the notification collaborator subscribes to. The core never
// formats or sends messages itself.
const (
	TypeQuoteCreated    = "quote.created"
	TypePolicyActivated = "policy.activated"
	TypeClaimSubmitted  = "claim.submitted"
)

const DefaultChannel = "suremotor.events"

type Envelope struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, typ string, payload any) error
}

// RedisPublisher emits envelopes on a redis pub/sub channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, typ string, payload any) error {
	env := Envelope{
		ID:      uuid.NewString(),
		Type:    typ,
		At:      time.Now().UTC(),
		Payload: payload,
	}
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, b).Err()
}

// Nop discards events; used in tests and when redis is absent.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

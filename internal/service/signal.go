package service

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/totegamma/reviewstore/internal/domain"
)

// SignalChannel is the redis pub/sub channel change events are published on.
const SignalChannel = "reviewstore"

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.Event) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "SignalService.Publish: marshal %s", event.Type)
	}

	err = s.rdb.Publish(ctx, SignalChannel, jsonstr).Err()
	if err != nil {
		return errors.Wrapf(err, "SignalService.Publish: %s", event.Type)
	}

	return nil
}

// Subscribe delivers decoded events until ctx is cancelled.
// Messages that are not events are logged and skipped.
func (s *SignalService) Subscribe(ctx context.Context, handler func(domain.Event)) error {
	sub := s.rdb.Subscribe(ctx, SignalChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed signal")
				continue
			}
			handler(event)
		}
	}
}

package booking

import (
	"context"
	"encoding/json"
	"time"

	"farmstead/models"
	"farmstead/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore caches in-progress booking sessions. Backed by Redis in
// production; tests substitute an in-memory map.
type SessionStore interface {
	Get(sessionID string) (*models.StaySession, error)
	Set(session *models.StaySession) error
	Delete(sessionID string) error
}

// RedisSessionStore implements SessionStore on the generic cache client.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore constructs a RedisSessionStore with the default TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.StaySessionTTL}
}

func (s *RedisSessionStore) Get(sessionID string) (*models.StaySession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Client.Get(ctx, utils.StaySessionPrefix+sessionID).Result()
	if err != nil {
		return nil, &SessionNotFoundError{SessionID: sessionID}
	}
	var session models.StaySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Set(session *models.StaySession) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, utils.StaySessionPrefix+session.SessionID, data, s.TTL).Err()
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return s.Client.Del(ctx, utils.StaySessionPrefix+sessionID).Err()
}

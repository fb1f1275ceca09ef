package preferences

import (
	"context"
	"fmt"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type preferenceRedisRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

// NewPreferenceRedisRepository stores each preference under its own key so
// a client's settings expire independently.
func NewPreferenceRedisRepository(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.PreferenceRepository {
	return &preferenceRedisRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func (r *preferenceRedisRepository) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	data, err := r.RedisRepository.Get(ctx, preferenceKey(clientID, key))
	if err != nil {
		return "", false, err
	}
	if data == "" {
		return "", false, nil
	}

	var value string
	err = json.Unmarshal([]byte(data), &value)
	if err != nil {
		return "", false, exceptions.ErrCannotParseJSON(err)
	}
	return value, true, nil
}

func (r *preferenceRedisRepository) Set(ctx context.Context, clientID, key, value string) error {
	return r.RedisRepository.Set(ctx, preferenceKey(clientID, key), value, r.TTL)
}

func preferenceKey(clientID, key string) string {
	return fmt.Sprintf(constvars.RedisKeyPreferenceFormat, clientID, key)
}

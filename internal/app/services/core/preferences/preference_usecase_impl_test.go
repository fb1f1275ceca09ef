package preferences

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
	"timetable-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingRepository struct{}

func (failingRepository) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingRepository) Set(ctx context.Context, clientID, key, value string) error {
	return errors.New("storage disabled")
}

// fakeRedisRepository mimics the JSON encoding of the redis repository.
type fakeRedisRepository struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	r.ttls[key] = exp
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	if _, ok := r.values[key]; ok {
		return false, nil
	}
	return true, r.Set(ctx, key, value, exp)
}

func TestPreferenceUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults When Nothing Stored", func(t *testing.T) {
		uc := NewPreferenceUsecase(NewPreferenceMemoryRepository(), "A1", time.Second, zap.NewNop())

		preferences := uc.Load(ctx, "client-1")
		assert.Equal(t, "A1", preferences.SelectedBatch)
		assert.Equal(t, constvars.ViewSwipe, preferences.PreferredView)
		assert.Equal(t, constvars.ThemeDark, preferences.Theme)
	})

	t.Run("Stored Values Are Returned Per Client", func(t *testing.T) {
		uc := NewPreferenceUsecase(NewPreferenceMemoryRepository(), "A1", time.Second, zap.NewNop())

		uc.Set(ctx, "client-1", constvars.PreferenceKeyTheme, constvars.ThemeLight)
		assert.Equal(t, constvars.ThemeLight, uc.Get(ctx, "client-1", constvars.PreferenceKeyTheme, constvars.ThemeDark))
		assert.Equal(t, constvars.ThemeDark, uc.Get(ctx, "client-2", constvars.PreferenceKeyTheme, constvars.ThemeDark))
	})

	t.Run("Empty Value Falls Back To Default", func(t *testing.T) {
		uc := NewPreferenceUsecase(NewPreferenceMemoryRepository(), "A1", 0, zap.NewNop())

		uc.Set(ctx, "client-1", constvars.PreferenceKeySelectedBatch, "")
		assert.Equal(t, "A1", uc.Get(ctx, "client-1", constvars.PreferenceKeySelectedBatch, "A1"))
	})

	t.Run("Unavailable Store Never Fails", func(t *testing.T) {
		uc := NewPreferenceUsecase(failingRepository{}, "A1", time.Second, zap.NewNop())

		assert.NotPanics(t, func() {
			uc.Set(ctx, "client-1", constvars.PreferenceKeyTheme, constvars.ThemeLight)
		})
		assert.Equal(t, constvars.ThemeDark, uc.Load(ctx, "client-1").Theme)
	})
}

func TestPreferenceRedisRepository(t *testing.T) {
	ctx := context.Background()
	redisRepository := newFakeRedisRepository()
	repo := NewPreferenceRedisRepository(redisRepository, 24*time.Hour)

	_, found, err := repo.Get(ctx, "client-1", constvars.PreferenceKeyPreferredView)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "client-1", constvars.PreferenceKeyPreferredView, constvars.ViewTable))

	key := fmt.Sprintf(constvars.RedisKeyPreferenceFormat, "client-1", constvars.PreferenceKeyPreferredView)
	assert.Equal(t, `"table"`, redisRepository.values[key])
	assert.Equal(t, 24*time.Hour, redisRepository.ttls[key])

	value, found, err := repo.Get(ctx, "client-1", constvars.PreferenceKeyPreferredView)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, constvars.ViewTable, value)

	redisRepository.values[key] = "not json"
	_, _, err = repo.Get(ctx, "client-1", constvars.PreferenceKeyPreferredView)
	assert.Error(t, err)
}

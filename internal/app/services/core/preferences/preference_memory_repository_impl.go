package preferences

import (
	"context"
	"sync"
	"timetable-service/internal/app/contracts"
)

type preferenceMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

// NewPreferenceMemoryRepository keeps preferences in process. Used for local
// runs without redis; values are lost on restart.
func NewPreferenceMemoryRepository() contracts.PreferenceRepository {
	return &preferenceMemoryRepository{values: make(map[string]map[string]string)}
}

func (r *preferenceMemoryRepository) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[clientID][key]
	return value, ok, nil
}

func (r *preferenceMemoryRepository) Set(ctx context.Context, clientID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values[clientID] == nil {
		r.values[clientID] = make(map[string]string)
	}
	r.values[clientID][key] = value
	return nil
}

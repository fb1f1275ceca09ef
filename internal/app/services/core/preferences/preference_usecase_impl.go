package preferences

import (
	"context"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type preferenceUsecase struct {
	PreferenceRepository contracts.PreferenceRepository
	DefaultBatch         string
	Timeout              time.Duration
	Log                  *zap.Logger
}

func NewPreferenceUsecase(
	preferenceRepository contracts.PreferenceRepository,
	defaultBatch string,
	timeout time.Duration,
	logger *zap.Logger,
) contracts.PreferenceUsecase {
	return &preferenceUsecase{
		PreferenceRepository: preferenceRepository,
		DefaultBatch:         defaultBatch,
		Timeout:              timeout,
		Log:                  logger,
	}
}

// Get returns the stored value, or defaultValue when nothing is stored or the
// store cannot be reached.
func (uc *preferenceUsecase) Get(ctx context.Context, clientID, key, defaultValue string) string {
	requestID := utils.GetRequestID(ctx)

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	value, found, err := uc.PreferenceRepository.Get(ctx, clientID, key)
	if err != nil {
		uc.Log.Warn("preferenceUsecase.Get "+constvars.ErrDevPreferenceStoreUnavailable,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPreferenceKey, key),
			zap.Error(err),
		)
		return defaultValue
	}
	if !found || value == "" {
		return defaultValue
	}
	return value
}

// Set persists value; failures are logged and otherwise ignored.
func (uc *preferenceUsecase) Set(ctx context.Context, clientID, key, value string) {
	requestID := utils.GetRequestID(ctx)

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	err := uc.PreferenceRepository.Set(ctx, clientID, key, value)
	if err != nil {
		uc.Log.Warn("preferenceUsecase.Set "+constvars.ErrDevPreferenceStoreUnavailable,
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPreferenceKey, key),
			zap.Error(err),
		)
		return
	}

	uc.Log.Debug("preferenceUsecase.Set succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPreferenceKey, key),
	)
}

func (uc *preferenceUsecase) Load(ctx context.Context, clientID string) models.Preferences {
	return models.Preferences{
		SelectedBatch: uc.Get(ctx, clientID, constvars.PreferenceKeySelectedBatch, uc.DefaultBatch),
		PreferredView: uc.Get(ctx, clientID, constvars.PreferenceKeyPreferredView, constvars.ViewSwipe),
		Theme:         uc.Get(ctx, clientID, constvars.PreferenceKeyTheme, constvars.ThemeDark),
	}
}

func (uc *preferenceUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, uc.Timeout)
}

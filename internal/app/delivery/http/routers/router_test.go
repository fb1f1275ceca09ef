package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
	"timetable-service/internal/app/config"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"
	"timetable-service/internal/app/services/core/highlighter"
	"timetable-service/internal/app/services/core/preferences"
	"timetable-service/internal/app/services/core/schedules"
	"timetable-service/internal/app/services/core/viewer"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDataset = `{
	"default_batch": "A1",
	"batches": {
		"A1": [
			{"day": 3, "start": 10, "duration": 1, "title": "MATH", "type": "lecture", "code": "MA101", "teacher": "SG"},
			{"day": 3, "start": 14, "duration": 2, "title": "CHEM", "type": "lab", "code": "CH101", "teacher": "AB"}
		],
		"B2": [
			{"day": 5, "start": 11, "duration": 1, "title": "BIO", "type": "tutorial", "code": "BI101", "teacher": "PK"}
		]
	},
	"subjects": {"MATH": "Engineering Mathematics"}
}`

type fixedClock struct{}

// Wednesday 10:30
func (fixedClock) Now() time.Time {
	return time.Date(2024, time.January, 3, 10, 30, 0, 0, time.UTC)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*chi.Mux, contracts.ViewerUsecase) {
	t.Helper()
	logger := zap.NewNop()

	path := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(path, []byte(testDataset), 0o600))

	internalConfig := &config.InternalConfig{}
	internalConfig.App.EndpointPrefix = "api"
	internalConfig.App.Version = "v1"
	internalConfig.App.MaxRequests = 1000
	internalConfig.App.MaxTimeRequestsPerSeconds = 1
	internalConfig.Viewer.DefaultTrackWidth = 400
	internalConfig.Viewer.SessionIdleTTLInMinutes = 30
	internalConfig.Viewer.ResizeDebounceInMilliseconds = 10

	scheduleRepository, err := schedules.NewScheduleRepository(context.Background(), schedules.NewScheduleFileSource(path), "", logger)
	require.NoError(t, err)

	clock := fixedClock{}
	activeHighlighter := highlighter.NewHighlighter(scheduleRepository, clock, logger)
	preferenceUsecase := preferences.NewPreferenceUsecase(preferences.NewPreferenceMemoryRepository(), scheduleRepository.DefaultBatch(), time.Second, logger)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleRepository, activeHighlighter, clock, logger)
	viewerUsecase := viewer.NewViewerUsecase(scheduleRepository, preferenceUsecase, activeHighlighter, clock, internalConfig.Viewer, logger)
	t.Cleanup(viewerUsecase.Stop)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		nil,
		middlewares.NewMiddlewares(logger, internalConfig),
		middlewares.NewRateLimiter(100, 200, time.Minute, logger),
		controllers.NewHealthController(scheduleRepository),
		controllers.NewScheduleController(logger, scheduleUsecase),
		controllers.NewViewerController(logger, viewerUsecase),
	)
	return router, viewerUsecase
}

func doRequest(t *testing.T, router http.Handler, method, path, clientID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if clientID != "" {
		req.Header.Set(constvars.HeaderXClientID, clientID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var response envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response), rec.Body.String())
	return rec, response
}

func TestRouter_ScheduleRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("Health", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, response.Success)
		assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("List Batches", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodGet, "/api/v1/batches", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Batches      []string `json:"batches"`
			DefaultBatch string   `json:"default_batch"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, []string{"A1", "B2"}, data.Batches)
		assert.Equal(t, "A1", data.DefaultBatch)
	})

	t.Run("Day Agenda", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodGet, "/api/v1/schedules/A1/days/3", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			DayName  string `json:"day_name"`
			Segments []struct {
				Kind   string `json:"kind"`
				Active bool   `json:"active"`
			} `json:"segments"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, "Wednesday", data.DayName)
		require.Len(t, data.Segments, 5)
		assert.True(t, data.Segments[0].Active)
	})

	t.Run("Bad Day", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodGet, "/api/v1/schedules/A1/days/monday", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, response.Success)

		rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/schedules/A1/days/7", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Unknown Batch", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/schedules/Z9/grid", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Grid And Active", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/schedules/A1/grid", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, response := doRequest(t, router, http.MethodGet, "/api/v1/schedules/A1/active", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			Active *struct {
				Class struct {
					FullTitle string `json:"full_title"`
				} `json:"class"`
			} `json:"active"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		require.NotNil(t, data.Active)
		assert.Equal(t, "Engineering Mathematics", data.Active.Class.FullTitle)
	})
}

func TestRouter_ViewerRoutes(t *testing.T) {
	router, viewerUsecase := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/viewer", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	clientID := rec.Header().Get(constvars.HeaderXClientID)
	require.NotEmpty(t, clientID, "a client id is issued on first visit")

	t.Run("Select Batch", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodPut, "/api/v1/viewer/batch", clientID, map[string]string{"batch": "B2"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.SelectBatchSuccessMessage, response.Message)

		rec, response = doRequest(t, router, http.MethodPut, "/api/v1/viewer/batch", clientID, map[string]string{"batch": "Z9"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.SelectBatchIgnoredMessage, response.Message)

		rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/viewer/batch", clientID, map[string]string{"batch": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("View Mode Validation", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/viewer/view", clientID, map[string]string{"view": "carousel"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = doRequest(t, router, http.MethodPut, "/api/v1/viewer/view", clientID, map[string]string{"view": "swipe"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Day And Keys", func(t *testing.T) {
		rec, response := doRequest(t, router, http.MethodPut, "/api/v1/viewer/day", clientID, map[string]int{"day": 9})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.JumpToDayIgnoredMessage, response.Message)

		rec, response = doRequest(t, router, http.MethodPost, "/api/v1/viewer/keys", clientID, map[string]string{"key": "ArrowLeft"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.KeyHandledSuccessMessage, response.Message)

		var data struct {
			DayIndex int `json:"day_index"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, 1, data.DayIndex)
	})

	t.Run("Gestures", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/viewer/gestures/start", clientID, map[string]interface{}{"pointer": "mouse", "x": 300, "y": 10})
		require.Equal(t, http.StatusOK, rec.Code)
		rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/viewer/gestures/move", clientID, map[string]interface{}{"x": 100, "y": 10})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, response := doRequest(t, router, http.MethodPost, "/api/v1/viewer/gestures/end", clientID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			Outcome    string `json:"outcome"`
			DayChanged bool   `json:"day_changed"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, "next_day", data.Outcome)
		assert.True(t, data.DayChanged)

		rec, _ = doRequest(t, router, http.MethodPost, "/api/v1/viewer/gestures/pinch", clientID, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Resize And Theme", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/viewer/resize", clientID, map[string]float64{"width": 320})
		assert.Equal(t, http.StatusAccepted, rec.Code)

		rec, response := doRequest(t, router, http.MethodPost, "/api/v1/viewer/theme", clientID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			Theme string `json:"theme"`
		}
		require.NoError(t, json.Unmarshal(response.Data, &data))
		assert.Equal(t, constvars.ThemeLight, data.Theme)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/viewer/view", bytes.NewReader([]byte(`{"view":`)))
		req.Header.Set(constvars.HeaderXClientID, clientID)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Equal(t, 1, viewerUsecase.SessionCount())
}

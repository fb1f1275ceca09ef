package schedules

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"timetable-service/internal/app/config"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScheduleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScheduleFileSource_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Dataset", func(t *testing.T) {
		path := writeScheduleFile(t, `{
			"default_batch": "A1",
			"batches": {
				"A1": [{"day": 1, "start": 9, "duration": 2, "title": "PHY", "type": "lecture", "code": "PH101", "teacher": "RK"}]
			},
			"subjects": {"PHY": "Engineering Physics"},
			"teachers": {"RK": "Dr. R. Kumar"}
		}`)

		source := NewScheduleFileSource(path)
		assert.Equal(t, constvars.ScheduleSourceFile, source.Name())

		dataset, err := source.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A1", dataset.DefaultBatch)
		require.Len(t, dataset.Batches["A1"], 1)
		assert.Equal(t, 2, dataset.Batches["A1"][0].Duration)
		assert.Equal(t, "Engineering Physics", dataset.SubjectTitle("PHY", "lecture"))
		assert.Equal(t, "Dr. R. Kumar", dataset.TeacherName("RK"))
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := NewScheduleFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(ctx)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := NewScheduleFileSource(writeScheduleFile(t, `{"batches": [`)).Load(ctx)
		assert.Error(t, err)
	})

	t.Run("No Batches", func(t *testing.T) {
		_, err := NewScheduleFileSource(writeScheduleFile(t, `{"batches": {}}`)).Load(ctx)
		assert.Error(t, err)
	})
}

func TestNewScheduleSource(t *testing.T) {
	internalConfig := &config.InternalConfig{}

	internalConfig.Schedule.Source = constvars.ScheduleSourceFile
	source, err := NewScheduleSource(internalConfig, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, constvars.ScheduleSourceFile, source.Name())

	for _, name := range []string{constvars.ScheduleSourceMinio, constvars.ScheduleSourceMongo, "ftp"} {
		internalConfig.Schedule.Source = name
		_, err = NewScheduleSource(internalConfig, nil, nil)
		assert.Error(t, err, "source %q without a client should fail", name)
	}
}

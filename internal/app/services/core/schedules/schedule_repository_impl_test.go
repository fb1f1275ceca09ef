package schedules

import (
	"testing"
	"timetable-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testDataset() *models.Dataset {
	return &models.Dataset{
		Batches: map[string][]models.ClassEntry{
			"A1": {
				{Day: 1, Start: 9, Duration: 2, Title: "PHY", Type: models.ClassTypeLecture, Code: "PH101", Teacher: "RK"},
				{Day: 3, Start: 10, Duration: 1, Title: "MATH", Type: models.ClassTypeLecture, Code: "MA101", Teacher: "SG"},
				{Day: 3, Start: 14, Duration: 2, Title: "CHEM", Type: models.ClassTypeLab, Code: "CH101", Teacher: "AB"},
			},
			"B2": {
				{Day: 5, Start: 11, Duration: 1, Title: "BIO", Type: models.ClassTypeTutorial, Code: "BI101", Teacher: "PK"},
			},
		},
		Subjects: map[string]string{
			"MATH":     "Engineering Mathematics",
			"CHEM:lab": "Chemistry Laboratory",
		},
		Teachers: map[string]string{
			"SG": "Dr. S. Gupta",
		},
	}
}

func TestScheduleRepository_DefaultBatch(t *testing.T) {
	t.Run("Configured Default Wins", func(t *testing.T) {
		dataset := testDataset()
		dataset.DefaultBatch = "A1"

		repo := newScheduleRepository(dataset, "B2", zap.NewNop())
		assert.Equal(t, "B2", repo.DefaultBatch())
		assert.Equal(t, "B2", repo.Dataset().DefaultBatch)
	})

	t.Run("Dataset Default When Configured Is Missing", func(t *testing.T) {
		dataset := testDataset()
		dataset.DefaultBatch = "B2"

		repo := newScheduleRepository(dataset, "Z9", zap.NewNop())
		assert.Equal(t, "B2", repo.DefaultBatch())
	})

	t.Run("First Batch Name Otherwise", func(t *testing.T) {
		repo := newScheduleRepository(testDataset(), "", zap.NewNop())
		assert.Equal(t, "A1", repo.DefaultBatch())
	})
}

func TestScheduleRepository_DropsMalformedEntries(t *testing.T) {
	dataset := &models.Dataset{
		Batches: map[string][]models.ClassEntry{
			"A1": {
				{Day: 0, Start: 9, Duration: 1, Title: "SUNDAY"},
				{Day: 7, Start: 9, Duration: 1, Title: "NEXT WEEK"},
				{Day: 2, Start: 9, Duration: 0, Title: "EMPTY"},
				{Day: 2, Start: -1, Duration: 1, Title: "NEGATIVE"},
				{Day: 2, Start: 23, Duration: 2, Title: "PAST MIDNIGHT"},
				{Day: 2, Start: 9, Duration: 1, Title: "KEPT"},
			},
		},
	}

	repo := newScheduleRepository(dataset, "A1", zap.NewNop())

	entries, ok := repo.FindClassesByBatch("A1")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "KEPT", entries[0].Title)
}

func TestScheduleRepository_Lookups(t *testing.T) {
	repo := newScheduleRepository(testDataset(), "", zap.NewNop())

	assert.Equal(t, []string{"A1", "B2"}, repo.BatchNames())
	assert.True(t, repo.HasBatch("B2"))
	assert.False(t, repo.HasBatch("Z9"))
	assert.False(t, repo.HasBatch(""))

	_, ok := repo.FindClassesByBatch("Z9")
	assert.False(t, ok)
}

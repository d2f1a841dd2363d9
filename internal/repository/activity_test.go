package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ospreyai/osprey/internal/repository"
)

func TestActivityRepository_RecentIsRelativeToNow(t *testing.T) {
	repo := repository.NewActivityRepository(repository.DefaultSeed().Activities)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	activities := repo.Recent(now)
	require.Len(t, activities, 4)

	assert.Equal(t, "RAG Document Processor", activities[0].Agent)
	assert.Equal(t, now.Add(-2*time.Minute), activities[0].Timestamp)
	assert.Equal(t, "processing", activities[3].Status)
	assert.Equal(t, now.Add(-5*time.Hour), activities[3].Timestamp)

	later := repo.Recent(now.Add(time.Hour))
	assert.Equal(t, now.Add(time.Hour-2*time.Minute), later[0].Timestamp)
}

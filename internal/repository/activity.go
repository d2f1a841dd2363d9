package repository

import (
	"time"

	"github.com/ospreyai/osprey/internal/domain"
)

type activityEntry struct {
	activity domain.Activity
	ago      time.Duration
}

// ActivityRepository serves the recent activity feed. Timestamps are
// relative to the time of each read.
type ActivityRepository struct {
	entries []activityEntry
}

// NewActivityRepository creates a new ActivityRepository from seeds.
// Seeds are expected to have passed ParseSeed validation.
func NewActivityRepository(seeds []ActivitySeed) *ActivityRepository {
	r := &ActivityRepository{entries: make([]activityEntry, 0, len(seeds))}
	for _, s := range seeds {
		ago, _ := time.ParseDuration(s.Ago)
		r.entries = append(r.entries, activityEntry{
			activity: domain.Activity{
				Agent:  s.Agent,
				Action: s.Action,
				Status: s.Status,
			},
			ago: ago,
		})
	}
	return r
}

// Recent returns the feed in insertion order with timestamps anchored at now.
func (r *ActivityRepository) Recent(now time.Time) []domain.Activity {
	activities := make([]domain.Activity, len(r.entries))
	for i, e := range r.entries {
		a := e.activity
		a.Timestamp = now.Add(-e.ago)
		activities[i] = a
	}
	return activities
}

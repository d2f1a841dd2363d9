package domain

import "time"

// Activity is a single entry in the recent activity feed.
type Activity struct {
	Agent     string
	Action    string
	Status    string
	Timestamp time.Time
}

package domain

import "time"

// Link maps a short code to its target URL. Code is the external lookup
// key and never changes after creation; TotalClicks and LastClicked are
// mutated only by redirect tracking.
type Link struct {
	ID          int64
	Code        string
	TargetURL   string
	TotalClicks int64
	LastClicked *time.Time
	CreatedAt   time.Time
}

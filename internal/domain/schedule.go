package domain

import "time"

// TripSchedule is a single dated entry. TripID is nil when the entry is not
// attached to any trip; Content is nil when no text was supplied.
type TripSchedule struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	TripTime time.Time `json:"trip_time"`
	Title    string    `json:"title"`
	Content  *string   `json:"content"`
	TripID   *int64    `json:"trip"`
}

// ScheduleFilter narrows a schedule listing. TripID wins over ID when both
// are set.
type ScheduleFilter struct {
	TripID *int64
	ID     *int64
}

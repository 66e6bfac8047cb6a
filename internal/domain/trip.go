package domain

// Trip is a titled plan owned by one account, referenced by username.
type Trip struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Username string `json:"username"`
}

// TripFilter narrows a trip listing. A nil field means "no filter".
type TripFilter struct {
	Username *string
}

// MaxTitleLen bounds trip and schedule titles.
const MaxTitleLen = 100

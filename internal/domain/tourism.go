package domain

// Column names in the tourism dataset header. They double as the JSON keys
// of each projected record.
const (
	ColumnRegion      = "지역분류"
	ColumnSpot        = "관광지명"
	ColumnDescription = "설명"
)

// TourismRecord is one row of the read-only tourism dataset, projected to
// the three fields the API exposes.
type TourismRecord struct {
	Region      string `json:"지역분류"`
	Spot        string `json:"관광지명"`
	Description string `json:"설명"`
}

// TourismQuery holds the optional lookup parameters. Spot takes priority over
// Region; when neither is set a random sample is returned.
type TourismQuery struct {
	Region *string
	Spot   *string
}

package model

// Flat is an apartment listing.
//
// ID is assigned by the repository on first save and never changes.
type Flat struct {
	ID            int64  `json:"id"`
	OccupancyDate Date   `json:"occupancyDate"`
	Street        string `json:"street"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Email         string `json:"email"`
}

// IsNew reports whether f has not been persisted yet.
func (f *Flat) IsNew() bool {
	return f.ID == 0
}

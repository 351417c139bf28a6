package email

import (
	"time"

	"github.com/deppfellow/flats-api/internal/model"
)

// PreviewData contains sample template data for local preview/testing,
// keyed by template.
var PreviewData = map[Template]any{
	TemplateNewFlat: NewFlatData{
		Flat: &model.Flat{
			ID:            42,
			OccupancyDate: model.NewDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			Street:        "Main St 1",
			Zip:           "12345",
			City:          "Metropolis",
			Country:       "US",
			Email:         "john@example.com",
		},
		Token:   "preview-token",
		BaseURL: "http://localhost:8080",
	},
}

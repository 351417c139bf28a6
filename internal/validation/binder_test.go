package validation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/flats-api/internal/errs"
	"github.com/deppfellow/flats-api/internal/model"
)

const validFlat = `{"occupancyDate":"2024-01-01","street":"Main St","zip":"12345","city":"Metropolis","country":"US","email":"a@b.com"}`

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func fieldNames(fieldErrors []errs.FieldError) []string {
	names := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		names = append(names, fe.Field)
	}
	return names
}

func TestFlatBinderBindsValidPayload(t *testing.T) {
	var flat model.Flat
	require.NoError(t, NewFlatBinder().Bind([]byte(validFlat), &flat))

	assert.Equal(t, "2024-01-01", flat.OccupancyDate.String())
	assert.Equal(t, "Main St", flat.Street)
	assert.Equal(t, "12345", flat.Zip)
	assert.Equal(t, "Metropolis", flat.City)
	assert.Equal(t, "US", flat.Country)
	assert.Equal(t, "a@b.com", flat.Email)
	assert.Zero(t, flat.ID)
}

func TestFlatBinderRejectsMalformedPayloads(t *testing.T) {
	for _, payload := range []string{"", "not json", "{", "{}", "null", "[]", `"text"`, "0", "false", `{"street":"a"} {}`} {
		t.Run(payload, func(t *testing.T) {
			var flat model.Flat
			requireBadRequest(t, NewFlatBinder().Bind([]byte(payload), &flat))
			assert.Equal(t, model.Flat{}, flat)
		})
	}
}

func TestFlatBinderRejectsBadDates(t *testing.T) {
	for _, date := range []string{"20240101", "2024-13-01", "01/01/2024", "tomorrow"} {
		t.Run(date, func(t *testing.T) {
			payload := `{"occupancyDate":"` + date + `","street":"Main St","zip":"12345","city":"Metropolis","country":"US","email":"a@b.com"}`

			var flat model.Flat
			httpErr := requireBadRequest(t, NewFlatBinder().Bind([]byte(payload), &flat))
			assert.Equal(t, []string{"occupancyDate"}, fieldNames(httpErr.Errors))
			assert.Equal(t, model.Flat{}, flat)
		})
	}
}

func TestFlatBinderReportsEveryInvalidField(t *testing.T) {
	payload := `{"occupancyDate":"2024-01-01","street":"  ","zip":"12345","city":"","country":"US","email":"nope"}`

	var flat model.Flat
	httpErr := requireBadRequest(t, NewFlatBinder().Bind([]byte(payload), &flat))
	assert.ElementsMatch(t, []string{"street", "city", "email"}, fieldNames(httpErr.Errors))
}

func TestFlatBinderMissingFieldsOnNewFlat(t *testing.T) {
	var flat model.Flat
	httpErr := requireBadRequest(t, NewFlatBinder().Bind([]byte(`{"street":"Main St"}`), &flat))
	assert.ElementsMatch(t, []string{"occupancyDate", "zip", "city", "country", "email"}, fieldNames(httpErr.Errors))
	assert.Empty(t, flat.Street)
}

func TestFlatBinderIgnoresUnknownFields(t *testing.T) {
	payload := `{"occupancyDate":"2024-01-01","street":"Main St","zip":"12345","city":"Metropolis","country":"US","email":"a@b.com","rooms":3,"id":99}`

	var flat model.Flat
	require.NoError(t, NewFlatBinder().Bind([]byte(payload), &flat))
	assert.Zero(t, flat.ID)
}

func TestFlatBinderCoercesValues(t *testing.T) {
	payload := `{"occupancyDate":"2024-01-01","street":"  Main St  ","zip":12345,"city":"Metropolis","country":"US","email":"a@b.com"}`

	var flat model.Flat
	require.NoError(t, NewFlatBinder().Bind([]byte(payload), &flat))
	assert.Equal(t, "Main St", flat.Street)
	assert.Equal(t, "12345", flat.Zip)
}

func TestFlatBinderRejectsNonScalarValues(t *testing.T) {
	payload := `{"occupancyDate":"2024-01-01","street":["Main St"],"zip":"12345","city":true,"country":"US","email":"a@b.com"}`

	var flat model.Flat
	httpErr := requireBadRequest(t, NewFlatBinder().Bind([]byte(payload), &flat))
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "street", Error: "must be a string"},
		{Field: "city", Error: "must be a string"},
	}, httpErr.Errors)
}

func TestFlatBinderPartialUpdate(t *testing.T) {
	var flat model.Flat
	require.NoError(t, NewFlatBinder().Bind([]byte(validFlat), &flat))
	flat.ID = 4

	require.NoError(t, NewFlatBinder().Bind([]byte(`{"city":"Gotham"}`), &flat))
	assert.Equal(t, int64(4), flat.ID)
	assert.Equal(t, "Gotham", flat.City)
	assert.Equal(t, "Main St", flat.Street)
	assert.Equal(t, "2024-01-01", flat.OccupancyDate.String())
}

func TestFlatBinderFailedUpdateLeavesTargetUntouched(t *testing.T) {
	var flat model.Flat
	require.NoError(t, NewFlatBinder().Bind([]byte(validFlat), &flat))
	before := flat

	httpErr := requireBadRequest(t, NewFlatBinder().Bind([]byte(`{"city":"Gotham","email":null}`), &flat))
	assert.Equal(t, []string{"email"}, fieldNames(httpErr.Errors))
	assert.Equal(t, before, flat)
}

package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/deppfellow/flats-api/internal/errs"
	"github.com/deppfellow/flats-api/internal/model"
)

const (
	codeInvalidJSON  = "INVALID_JSON"
	codeEmptyPayload = "EMPTY_PAYLOAD"
)

// flatForm holds the candidate values of a flat while they are checked.
type flatForm struct {
	OccupancyDate string `json:"occupancyDate" validate:"required,datetime=2006-01-02"`
	Street        string `json:"street" validate:"required"`
	Zip           string `json:"zip" validate:"required"`
	City          string `json:"city" validate:"required"`
	Country       string `json:"country" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
}

func (f *flatForm) fields() map[string]*string {
	return map[string]*string{
		"occupancyDate": &f.OccupancyDate,
		"street":        &f.Street,
		"zip":           &f.Zip,
		"city":          &f.City,
		"country":       &f.Country,
		"email":         &f.Email,
	}
}

// FlatBinder turns a JSON payload into a valid flat.
type FlatBinder struct{}

// NewFlatBinder returns a FlatBinder.
func NewFlatBinder() *FlatBinder {
	return &FlatBinder{}
}

// Bind overlays the fields present in data onto target and validates the
// result. Unknown fields are ignored.
//
// The verdict is all or nothing: on error target is left as it was, on
// success every field is written. Errors are 400 *errs.HTTPError values.
func (b *FlatBinder) Bind(data []byte, target *model.Flat) error {
	payload, err := decodeObject(data)
	if err != nil {
		return err
	}

	form := flatForm{
		OccupancyDate: target.OccupancyDate.String(),
		Street:        target.Street,
		Zip:           target.Zip,
		City:          target.City,
		Country:       target.Country,
		Email:         target.Email,
	}

	var fieldErrors []errs.FieldError
	rejected := make(map[string]bool)
	for name, dst := range form.fields() {
		raw, ok := payload[name]
		if !ok {
			continue
		}
		value, err := stringValue(raw)
		if err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: name, Error: err.Error()})
			rejected[name] = true
			continue
		}
		*dst = value
	}

	if err := Struct(&form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return errors.Wrap(err, "validating flat")
		}
		for _, fe := range validationErrors {
			if rejected[fe.Field()] {
				continue
			}
			fieldErrors = append(fieldErrors, errs.FieldError{Field: fe.Field(), Error: fieldMessage(fe)})
		}
	}

	if len(fieldErrors) > 0 {
		return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors)
	}

	date, err := model.ParseDate(form.OccupancyDate)
	if err != nil {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{
			{Field: "occupancyDate", Error: "must be a date in YYYY-MM-DD format"},
		})
	}

	target.OccupancyDate = date
	target.Street = form.Street
	target.Zip = form.Zip
	target.City = form.City
	target.Country = form.Country
	target.Email = form.Email
	return nil
}

// decodeObject parses data as a single non-empty JSON object.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errs.NewBadRequestError("Invalid JSON body", false, errs.WithCode(codeInvalidJSON), nil)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errs.NewBadRequestError("Invalid JSON body", false, errs.WithCode(codeInvalidJSON), nil)
	}

	object, ok := value.(map[string]any)
	if !ok || len(object) == 0 {
		return nil, errs.NewBadRequestError("Request body must be a non-empty JSON object", false, errs.WithCode(codeEmptyPayload), nil)
	}
	return object, nil
}

// stringValue accepts strings (trimmed), numbers in their literal form and
// null, which clears the field.
func stringValue(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", errors.New("must be a string")
	}
}

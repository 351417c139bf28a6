package handler

import (
	"io"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/deppfellow/flats-api/internal/errs"
	"github.com/deppfellow/flats-api/internal/validation"
)

// maxBodyBytes caps how much of a request body is read.
const maxBodyBytes = 1 << 20

// FlatIDRequest carries the {id} path segment.
type FlatIDRequest struct {
	ID string `json:"id" validate:"required"`

	id int64
}

func (r *FlatIDRequest) BindRequest(c echo.Context) error {
	r.ID = strings.TrimSpace(c.Param("id"))
	return nil
}

func (r *FlatIDRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil || id <= 0 {
		return validation.CustomValidationErrors{{Field: "id", Message: "must be a positive integer"}}
	}
	r.id = id
	return nil
}

// FlatID returns the parsed id. Valid only after Validate succeeded.
func (r *FlatIDRequest) FlatID() int64 {
	return r.id
}

// CreateFlatRequest carries the raw JSON body; decoding it is up to the
// service.
type CreateFlatRequest struct {
	Body string `json:"body" validate:"required"`
}

func (r *CreateFlatRequest) BindRequest(c echo.Context) error {
	body, err := readBody(c)
	r.Body = body
	return err
}

func (r *CreateFlatRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateFlatRequest carries the {id} path segment and the raw JSON body.
type UpdateFlatRequest struct {
	FlatIDRequest
	Body string `json:"body"`
}

func (r *UpdateFlatRequest) BindRequest(c echo.Context) error {
	if err := r.FlatIDRequest.BindRequest(c); err != nil {
		return err
	}
	body, err := readBody(c)
	r.Body = body
	return err
}

// Validate reports a missing id and a missing body together.
func (r *UpdateFlatRequest) Validate() error {
	var failures validation.CustomValidationErrors

	if err := r.FlatIDRequest.Validate(); err != nil {
		var custom validation.CustomValidationErrors
		if errors.As(err, &custom) {
			failures = append(failures, custom...)
		} else {
			failures = append(failures, validation.CustomValidationError{Field: "id", Message: "is required"})
		}
	}

	if r.Body == "" {
		failures = append(failures, validation.CustomValidationError{Field: "body", Message: "is required"})
	}

	if len(failures) > 0 {
		return failures
	}
	return nil
}

// ListFlatsRequest has no inputs.
type ListFlatsRequest struct{}

func (r *ListFlatsRequest) BindRequest(echo.Context) error {
	return nil
}

func (r *ListFlatsRequest) Validate() error {
	return nil
}

// readBody returns the request body with surrounding whitespace removed.
func readBody(c echo.Context) (string, error) {
	if c.Request().Body == nil {
		return "", nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "reading request body")
	}
	if len(data) > maxBodyBytes {
		return "", errs.NewBadRequestError("Request body too large", false, nil, nil)
	}
	return strings.TrimSpace(string(data)), nil
}

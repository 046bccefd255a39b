package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/session"
)

// ErrUnknownFileType indicates a download for an unsupported file type
type ErrUnknownFileType struct {
	FileType string
}

func (e *ErrUnknownFileType) Error() string {
	return fmt.Sprintf("invalid file type: %s", e.FileType)
}

// ErrPDFDisabled indicates PDF export is not enabled on this server
type ErrPDFDisabled struct{}

func (e *ErrPDFDisabled) Error() string {
	return "PDF export is disabled"
}

// ErrBadForm indicates the request body could not be parsed as a form
type ErrBadForm struct {
	Cause error
}

func (e *ErrBadForm) Error() string {
	return fmt.Sprintf("invalid form submission: %v", e.Cause)
}

func (e *ErrBadForm) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, rendering.ErrUnknownTemplate), errors.Is(err, session.ErrNoSession):
		return http.StatusNotFound
	}

	switch err.(type) {
	case *ErrUnknownFileType, *ErrBadForm:
		return http.StatusBadRequest
	case *ErrPDFDisabled:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage is the text shown to the client for an error.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, rendering.ErrUnknownTemplate):
		return "Template files not found"
	case errors.Is(err, session.ErrNoSession):
		return "No resume data found"
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

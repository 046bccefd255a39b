package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestErrUnknownFileType(t *testing.T) {
	err := &ErrUnknownFileType{FileType: "docx"}
	assert.Equal(t, "invalid file type: docx", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrPDFDisabled(t *testing.T) {
	err := &ErrPDFDisabled{}
	assert.Equal(t, "PDF export is disabled", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrBadForm(t *testing.T) {
	cause := errors.New("http: request body too large")
	err := &ErrBadForm{Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("%w: fancy", rendering.ErrUnknownTemplate)))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(session.ErrNoSession))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&rendering.RenderError{Message: "failed to print PDF"}))
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Template files not found", publicMessage(fmt.Errorf("%w: x", rendering.ErrUnknownTemplate)))
	assert.Equal(t, "No resume data found", publicMessage(session.ErrNoSession))
	assert.Equal(t, "Internal server error", publicMessage(errors.New("secret detail")))
	assert.Equal(t, "invalid file type: x", publicMessage(&ErrUnknownFileType{FileType: "x"}))
}

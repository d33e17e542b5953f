package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello "))
	w.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_NothingWritten(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 0, w.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	assert.Same(t, rec, w.Unwrap())
}

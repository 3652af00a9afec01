//go:build unit || e2e

// Package httptest drives a gin router in-process and asserts on the JSON
// bodies the API produces.
package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends one request through the router. A non-nil body is
// JSON-encoded; a non-empty authToken is sent as a bearer header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(t, json.NewEncoder(buf).Encode(body), "encode request body")
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into
// target when one is given.
func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, rec.Code, "unexpected status, body: %s", rec.Body.String()) {
		return
	}
	if wantStatus >= 200 && wantStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), target),
			"decode response body: %s", rec.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error envelope's message
// contains wantMsg.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, rec.Code, "unexpected status, body: %s", rec.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
		"decode error body: %s", rec.Body.String())
	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}

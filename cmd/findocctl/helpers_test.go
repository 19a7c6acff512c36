package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONNumber(t *testing.T) {
	assert.Equal(t, "42", jsonNumber(float64(42)))
	assert.Equal(t, "7.5", jsonNumber(7.5))
	assert.Equal(t, "-", jsonNumber(nil))
	assert.Equal(t, "IN_PROGRESS", jsonNumber("IN_PROGRESS"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456...", truncate("0123456789abc", 10))
}

func TestParseJobID(t *testing.T) {
	id, err := parseJobID("17")
	assert.NoError(t, err)
	assert.Equal(t, 17, id)

	_, err = parseJobID("abc")
	assert.Error(t, err)
}

// deleteServer serves DELETE /analysis/iterative/:id, rejecting the ids in
// running the way the API rejects in-progress jobs.
func deleteServer(t *testing.T, running ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		for _, busy := range running {
			if id == busy {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error": "Cannot delete a running analysis. Please cancel it first."}`))
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	prev := serverURL
	serverURL = srv.URL
	t.Cleanup(func() { serverURL = prev })
	return srv
}

func TestJobsDelete_AllSucceed(t *testing.T) {
	deleteServer(t)

	cmd := jobsDeleteCmd()
	err := cmd.RunE(cmd, []string{"5", "6"})
	assert.NoError(t, err)
}

func TestJobsDelete_PartialFailureExitsPartialSuccess(t *testing.T) {
	deleteServer(t, "7")

	cmd := jobsDeleteCmd()
	err := cmd.RunE(cmd, []string{"5", "7"})
	assert.True(t, errors.Is(err, errPartialSuccess))
}

func TestJobsDelete_AllFailReturnsError(t *testing.T) {
	deleteServer(t, "7", "8")

	cmd := jobsDeleteCmd()
	err := cmd.RunE(cmd, []string{"7", "8"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, errPartialSuccess))
	assert.Contains(t, err.Error(), "Cannot delete a running analysis")
}

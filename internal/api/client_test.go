package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body any) *http.Response {
	payload, _ := json.Marshal(body)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestListTasksQuery(t *testing.T) {
	client := NewClient("https://example.com", "token", 2*time.Second)
	client.HTTP = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, []string{"active", "workview", "@home"}, r.URL.Query()["filter"])
		return jsonResponse(http.StatusOK, []Task{{ID: "1", Title: "Water the plants"}}), nil
	})}

	tasks, _, err := client.ListTasks(context.Background(), []string{"active", "workview", "@home"})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Water the plants", tasks[0].Title)
}

func TestReplaceTaskRequestID(t *testing.T) {
	client := NewClient("https://example.com", "token", 2*time.Second)
	client.HTTP = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "/tasks/42", r.URL.Path)
		var task Task
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))
		assert.Equal(t, StatusDone, task.Status)
		return jsonResponse(http.StatusOK, task), nil
	})}

	out, reqID, err := client.ReplaceTask(context.Background(), "42", Task{ID: "42", Title: "x", Status: StatusDone})
	require.NoError(t, err)
	assert.NotEmpty(t, reqID)
	assert.Equal(t, StatusDone, out.Status)
}

func TestGetTaskDecodesRecord(t *testing.T) {
	client := NewClient("https://example.com", "token", 2*time.Second)
	client.HTTP = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks/42", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		return jsonResponse(http.StatusOK, Task{ID: "42", Title: "Water the plants", Status: StatusActive}), nil
	})}

	task, _, err := client.GetTask(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", task.ID)
	assert.Equal(t, "Water the plants", task.Title)
}

func TestAPIErrorCarriesBody(t *testing.T) {
	client := NewClient("https://example.com", "", 2*time.Second)
	client.HTTP = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewReader([]byte("no such task"))),
		}, nil
	})}

	_, _, err := client.GetTask(context.Background(), "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "no such task", apiErr.Message)
}

func TestGetRetriesOnServerError(t *testing.T) {
	restore := waitForRetry
	waitForRetry = func(ctx context.Context, delay time.Duration) error { return nil }
	defer func() { waitForRetry = restore }()

	attempts := 0
	client := NewClient("https://example.com", "", 2*time.Second)
	client.HTTP = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		attempts++
		if attempts == 1 {
			return &http.Response{StatusCode: http.StatusServiceUnavailable, Body: io.NopCloser(bytes.NewReader(nil))}, nil
		}
		return jsonResponse(http.StatusOK, []Task{}), nil
	})}

	_, _, err := client.ListTasks(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDeleteDoesNotRetryWithoutRequestID(t *testing.T) {
	// Delete carries a request id, so it is retry safe; a bare GET of a
	// mutating shape would not be. Pin the helper directly.
	assert.True(t, isRetrySafe(http.MethodDelete, true))
	assert.False(t, isRetrySafe(http.MethodPost, false))
}

func TestRetryDelayHonorsRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, retryDelay(0, "2"))
	assert.Equal(t, 3*time.Second, retryDelay(0, "30"))
	assert.Equal(t, 200*time.Millisecond, retryDelay(0, ""))
	assert.Equal(t, 800*time.Millisecond, retryDelay(2, ""))
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storytrip-server/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, `{"id":1,"title":"Mock Trip (No API Key)","genre":"Simulation","story":"s","script":[],"timeline":[],"music":"m","caption":"c"}`)

	out, err := execute(t, "--server", srv.URL, "create", "--destination", "Kyoto", "--dates", "April", "--mood", "Nostalgic", "--platform", "TikTok")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Mock Trip (No API Key)"`)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/generate", req.Path)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &body))
	assert.Equal(t, "Kyoto", body["destination"])
	assert.Equal(t, "Nostalgic", body["mood"])
}

func TestCreateCommand_RequiresDestination(t *testing.T) {
	_, err := execute(t, "--server", "http://127.0.0.1:1", "create")
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `[]`)

	out, err := execute(t, "--server", srv.URL, "list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestGetCommand_NotFound(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusNotFound, `{"error":"Story not found"}`)

	_, err := execute(t, "--server", srv.URL, "get", "77")
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "/api/generate/77", (*requests)[0].Path)
}

func TestGetCommand_InvalidID(t *testing.T) {
	_, err := execute(t, "get", "abc")
	assert.EqualError(t, err, `invalid story id "abc"`)
}

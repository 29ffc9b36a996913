package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

func TestReceiveWord(t *testing.T) {
	router := NewRouter(newCompleter("program", "project", "prolong", "pro"), []string{testOrigin})

	testCases := []struct {
		query       string
		status      int
		body        string
		description string
	}{
		{"?word=pro", http.StatusOK, `{"finished_word":"pro"}`, "Exact match returned"},
		{"?word=PROG", http.StatusOK, `{"finished_word":"program"}`, "Case insensitive"},
		{"?word=xyz", http.StatusOK, `{"finished_word":null}`, "No suggestion is null"},
		{"", http.StatusBadRequest, `{"detail":"No word provided"}`, "Missing word"},
		{"?word=", http.StatusBadRequest, `{"detail":"No word provided"}`, "Empty word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/receive_word"+tc.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestHealth(t *testing.T) {
	router := NewRouter(newCompleter("a", "b"), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, HealthResponse{Status: "ok", Words: 2}, body)
}

func TestCORS(t *testing.T) {
	router := NewRouter(newCompleter("cat"), []string{testOrigin})

	req := httptest.NewRequest(http.MethodGet, "/receive_word?word=ca", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))


	other := httptest.NewRequest(http.MethodGet, "/receive_word?word=ca", nil)
	other.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, other)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(newCompleter("cat"), []string{testOrigin})

	testCases := []struct {
		path        string
		method      string
		description string
	}{
		{"/receive_word", http.MethodGet, "Simple method"},
		{"/receive_word", http.MethodPut, "PUT is allowed"},
		{"/receive_word", http.MethodDelete, "DELETE is allowed"},
		{"/receive_word", http.MethodPatch, "PATCH is allowed"},
		{"/health", http.MethodPost, "Health route"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, tc.path, nil)
			req.Header.Set("Origin", testOrigin)
			req.Header.Set("Access-Control-Request-Method", tc.method)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.method, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestCORSPreflightUnknownOrigin(t *testing.T) {
	router := NewRouter(newCompleter("cat"), []string{testOrigin})
	req := httptest.NewRequest(http.MethodOptions, "/receive_word", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPServerShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	srv := NewHTTPServer(addr, newCompleter("cat"), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not shut down")
	}
}

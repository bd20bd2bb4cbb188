package lint_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/pipeshift/pipeshift/internal/adapters/outbound/lint"
	"github.com/pipeshift/pipeshift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_ValidConfiguration(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("PRIVATE-TOKEN")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": true})
	}))
	defer srv.Close()

	result := lint.New(srv.URL, "glpat-test").Lint(context.Background(), "stages: [build]")

	assert.Equal(t, domain.CollaboratorOK, result.Status)
	assert.True(t, result.Valid)
	assert.Equal(t, "/api/v4/ci/lint", gotPath)
	assert.Equal(t, "glpat-test", gotToken)
	assert.Equal(t, "stages: [build]", gotBody["content"])
}

func TestLint_InvalidConfiguration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"valid":  false,
			"errors": []string{"jobs:deploy config contains unknown keys"},
		})
	}))
	defer srv.Close()

	result := lint.New(srv.URL, "").Lint(context.Background(), "bogus")

	assert.Equal(t, domain.CollaboratorOK, result.Status)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
}

func TestLint_RetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"valid": true})
	}))
	defer srv.Close()

	result := lint.New(srv.URL, "").Lint(context.Background(), "stages: [build]")

	assert.Equal(t, domain.CollaboratorOK, result.Status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLint_DegradedOnPersistentServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := lint.New(srv.URL, "").Lint(context.Background(), "stages: [build]")

	assert.Equal(t, domain.CollaboratorDegraded, result.Status)
	assert.NotEmpty(t, result.Note)
}

func TestLint_DegradedOnUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	result := lint.New(srv.URL, "").Lint(context.Background(), "stages: [build]")

	assert.Equal(t, domain.CollaboratorDegraded, result.Status)
	assert.Contains(t, result.Note, "unreachable")
}

func TestLint_DegradedOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	result := lint.New(srv.URL, "wrong").Lint(context.Background(), "stages: [build]")

	assert.Equal(t, domain.CollaboratorDegraded, result.Status)
	assert.Contains(t, result.Note, "401")
}

// ABOUTME: Tests for the remote catalog HTTP client.
// ABOUTME: Uses httptest to exercise success, rate-limit, and error paths.
package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchByBodyPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercises/bodyPart/chest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"0001","name":"barbell bench press","bodyPart":"chest","target":"pectorals","equipment":"barbell"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	exs, err := c.FetchByBodyPart(context.Background(), "chest")
	if err != nil {
		t.Fatalf("FetchByBodyPart failed: %v", err)
	}
	if len(exs) != 1 || exs[0].ID != "0001" {
		t.Errorf("unexpected result: %+v", exs)
	}
}

func TestFetchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/exercises/exercise/0002" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"0002","name":"dumbbell curl","bodyPart":"upper arms","target":"biceps","equipment":"dumbbell"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	ex, err := c.FetchByID(context.Background(), "0002")
	if err != nil {
		t.Fatalf("FetchByID failed: %v", err)
	}
	if ex.Target != "biceps" {
		t.Errorf("unexpected exercise: %+v", ex)
	}
}

func TestRateLimitIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.SearchByName(context.Background(), "bench")
	if !errors.Is(err, ErrRemoteUnavailable) {
		t.Errorf("expected ErrRemoteUnavailable, got %v", err)
	}
}

func TestServerErrorIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.FetchByEquipment(context.Background(), "barbell")
	if !errors.Is(err, ErrRemoteUnavailable) {
		t.Errorf("expected ErrRemoteUnavailable, got %v", err)
	}
}

func TestNetworkErrorIsRemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "")
	_, err := c.FetchByTarget(context.Background(), "biceps")
	if !errors.Is(err, ErrRemoteUnavailable) {
		t.Errorf("expected ErrRemoteUnavailable, got %v", err)
	}
}

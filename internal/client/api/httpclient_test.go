package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode error: %v", err)
		}
		if req.Username != "demo" || req.Password != "demo123" {
			t.Errorf("unexpected credentials: %+v", req)
		}
		json.NewEncoder(w).Encode(loginResponse{FullName: "Demo User", AccessToken: "tok-123"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	fullName, err := c.Login(context.Background(), "demo", "demo123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if fullName != "Demo User" {
		t.Fatalf("unexpected full name: %q", fullName)
	}
	if c.token != "tok-123" {
		t.Fatalf("token not stored: %q", c.token)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	_, err := c.Login(context.Background(), "demo", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreateRun_SendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewEncoder(w).Encode(loginResponse{AccessToken: "tok-123"})
		case "/test_runs":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("unexpected auth header: %q", got)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(createRunResponse{ID: 7, Name: "nightly", StartTime: "2026-08-01T12:00:00Z"})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	if _, err := c.Login(context.Background(), "demo", "demo123"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	run, err := c.CreateRun(context.Background(), "nightly")
	if err != nil {
		t.Fatalf("CreateRun error: %v", err)
	}
	if run.ID != 7 || run.Name != "nightly" {
		t.Fatalf("unexpected run: %+v", run)
	}
}

func TestEndRun_AlreadyEnded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	if err := c.EndRun(context.Background(), 7); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestRecordSample_RunNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	if err := c.RecordSample(context.Background(), 99, 42.5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDo_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewHTTPClient(srv.URL, 0)
	if err := c.RecordSample(context.Background(), 1, 10); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

package activityapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClientList(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/activities" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Chess Club": {"description":"d","schedule":"s","max_participants":2,"participants":["a@x.com"]}}`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	collection, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := Collection{
		{Name: "Chess Club", Activity: Activity{
			Description:     "d",
			Schedule:        "s",
			MaxParticipants: 2,
			Participants:    []Participant{{Email: "a@x.com"}},
		}},
	}
	if diff := cmp.Diff(want, collection); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
}

func TestClientListTransportError(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	backend.Close()

	client := New(backend.URL)
	if _, err := client.List(context.Background()); err == nil {
		t.Error("List succeeded against a closed server, want error")
	}
}

func TestClientListParseError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	_, err := client.List(context.Background())
	if err == nil {
		t.Fatal("List accepted a malformed body, want error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("parse failure surfaced as APIError: %v", err)
	}
}

func TestClientSignupSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/activities/Chess Club/signup" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "new@mergington.edu" {
			t.Errorf("email = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Signed up new@mergington.edu for Chess Club"}`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	msg, err := client.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if msg != "Signed up new@mergington.edu for Chess Club" {
		t.Errorf("message = %q", msg)
	}
}

func TestClientSignupEscapesIdentifiers(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("email"); got != "a+b@x.com" {
			t.Errorf("email = %q, want %q", got, "a+b@x.com")
		}
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	if _, err := client.Signup(context.Background(), "Chess Club", "a+b@x.com"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
}

func TestClientSignupRejection(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Already signed up"}`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	_, err := client.Signup(context.Background(), "Chess Club", "dup@x.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Detail != "Already signed up" {
		t.Errorf("Detail = %q, want %q", apiErr.Detail, "Already signed up")
	}
}

func TestClientUnregisterIgnoresBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client := New(backend.URL)
	if err := client.Unregister(context.Background(), "Chess Club", "a@x.com"); err != nil {
		t.Fatalf("Unregister: %v", err)
	}
}

func TestClientUnregisterRejection(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Activity not found"}`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	err := client.Unregister(context.Background(), "Ghost Club", "a@x.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Detail != "Activity not found" {
		t.Errorf("Detail = %q", apiErr.Detail)
	}
}

func TestClientRejectionWithoutDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`oops`))
	}))
	defer backend.Close()

	client := New(backend.URL)
	err := client.Unregister(context.Background(), "Chess Club", "a@x.com")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Detail != "" {
		t.Errorf("Detail = %q, want empty", apiErr.Detail)
	}
}

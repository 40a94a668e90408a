package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL), srv
}

func TestDoReturnsServerErrorMessage(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"db down"}`))
	}))
	defer srv.Close()

	_, err := c.GetPoll(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "db down" {
		t.Errorf("error message = %q, want %q", err.Error(), "db down")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.Status)
	}
}

func TestDoFallsBackToGenericMessage(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>gateway exploded</html>"))
	}))
	defer srv.Close()

	_, err := c.GetPoll(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "API error: 500" {
		t.Errorf("error message = %q, want %q", err.Error(), "API error: 500")
	}
}

func TestDoParsesSuccessBodyUnmodified(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"question":"MVP?","active":true,"options":[{"id":1,"label":"Williams","votes":3}],"total_votes":3}`))
	}))
	defer srv.Close()

	poll, err := c.GetPoll(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetPoll() error = %v", err)
	}
	if poll.ID != 7 || poll.Question != "MVP?" || poll.TotalVotes != 3 {
		t.Errorf("poll = %+v", poll)
	}
	if len(poll.Options) != 1 || poll.Options[0].Label != "Williams" {
		t.Errorf("options = %+v", poll.Options)
	}
}

func TestAuthTokenAttachAndRemove(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c.SetAuthToken("tok123")
	if _, err := c.GetMobileConfig(context.Background()); err != nil {
		t.Fatalf("GetMobileConfig() error = %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}

	c.SetAuthToken("")
	if _, err := c.GetMobileConfig(context.Background()); err != nil {
		t.Fatalf("GetMobileConfig() error = %v", err)
	}
	if hasAuth {
		t.Errorf("Authorization header still present after clearing token: %q", gotAuth)
	}
}

func TestStandardHeadersAlwaysSent(t *testing.T) {
	var contentType, clientID string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		clientID = r.Header.Get("X-Client")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := c.GetMobileConfig(context.Background()); err != nil {
		t.Fatalf("GetMobileConfig() error = %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if clientID != "sportsmockery-mobile" {
		t.Errorf("X-Client = %q", clientID)
	}
}

func TestTransportErrorPropagatesUnwrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL)
	_, err := c.GetPoll(context.Background(), 1)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an *APIError, got %v", apiErr)
	}
}

func TestMockDraft401BecomesErrAuthRequired(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"authentication required"}`))
	}))
	defer srv.Close()

	_, err := c.MockDraft().Start(context.Background(), "bears", 0)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrAuthRequired) {
		t.Errorf("errors.Is(err, ErrAuthRequired) = false, err = %v", err)
	}
}

func TestGM401StaysGenericAPIError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"authentication required"}`))
	}))
	defer srv.Close()

	_, err := c.GM().GradeTrade(context.Background(), "bears", json.RawMessage(`{}`), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrAuthRequired) {
		t.Error("GM surface must not special-case 401")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Errorf("err = %v, want *APIError with status 401", err)
	}
}

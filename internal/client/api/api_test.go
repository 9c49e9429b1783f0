package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionStub struct {
	token     string
	loggedOut bool
}

func (s *sessionStub) Token() string { return s.token }
func (s *sessionStub) Logout()       { s.loggedOut = true }

func TestDispatcher_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"message":"success","data":{"items":[]}}`))
	}))
	defer srv.Close()

	session := &sessionStub{token: "tok-1"}
	d := New(srv.URL, session)

	_, err := d.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestDispatcher_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"code":200,"message":"success","data":{"token":"tok-1","id":"u1","username":"testuser","email":"t@e.com"}}`))
	}))
	defer srv.Close()

	session := &sessionStub{}
	d := New(srv.URL, session)

	token, profile, err := d.Login(context.Background(), "testuser", "password123")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, "testuser", profile.Username)
}

func TestDispatcher_UnauthorizedForcesLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":401,"message":"invalid or expired token"}`))
	}))
	defer srv.Close()

	session := &sessionStub{token: "stale"}
	d := New(srv.URL, session)

	_, err := d.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, session.loggedOut)
}

func TestDispatcher_LoginFailureDoesNotForceLogout(t *testing.T) {
	// Отказ в аутентификации приходит как 400: сессия не сбрасывается,
	// текст причины доходит до вызывающего кода.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":400,"message":"invalid credentials"}`))
	}))
	defer srv.Close()

	session := &sessionStub{}
	d := New(srv.URL, session)

	_, _, err := d.Login(context.Background(), "testuser", "wrongpass")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, session.loggedOut)
}

func TestDispatcher_ServerErrorMessagePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"item not found"}`))
	}))
	defer srv.Close()

	session := &sessionStub{token: "tok-1"}
	d := New(srv.URL, session)

	_, err := d.ListItems(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item not found")
	assert.False(t, session.loggedOut)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNoteID = "0190c6a4-0000-7000-8000-0000000000b1"

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, env map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

// ── construction ──

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://notes.example.com ", want: "https://notes.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── auth ──

func TestLogin_StoresToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"user":  map[string]any{"id": "u1", "username": "alice", "role": "user"},
				"token": "jwt-token",
			},
		})
	})

	result, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Invalid credentials"})
	})

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "x"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, a.Token())
}

func TestRegister_BadRequestCarriesMessage(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		writeEnvelope(t, w, http.StatusBadRequest, map[string]any{"success": false, "error": "Email already registered"})
	})

	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "a", Email: "a@b.c", Password: "secret1"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "bad request: Email already registered", err.Error())
}

func TestRegister_MissingToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"user": map[string]any{}}})
	})

	_, err := a.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestMe_SendsBearerToken(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer saved-token", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": "u1", "email": "a@b.c"}})
	})
	a.SetToken(" saved-token ")

	user, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

// ── notes ──

func TestListNotes_Routes(t *testing.T) {
	tests := []struct {
		name   string
		filter models.NoteFilter
		path   string
	}{
		{name: "all", filter: models.NoteFilter{}, path: "/api/notes"},
		{name: "active", filter: models.ActiveNotes(), path: "/api/notes/active"},
		{name: "archived", filter: models.ArchivedNotes(), path: "/api/notes/archived"},
		{name: "category", filter: models.NotesInCategory("to do"), path: "/api/notes/category/to do"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				writeEnvelope(t, w, http.StatusOK, map[string]any{
					"success": true,
					"data":    []map[string]any{{"id": testNoteID, "title": "T", "categories": []string{"a"}}},
				})
			})

			notes, err := a.ListNotes(context.Background(), tt.filter)

			require.NoError(t, err)
			require.Len(t, notes, 1)
			assert.Equal(t, models.Categories{"a"}, notes[0].Categories)
		})
	}
}

func TestListNotes_EmptyIsNotNil(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": []any{}})
	})

	notes, err := a.ListNotes(context.Background(), models.NoteFilter{})

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCreateNote(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"T","content":"C","categories":["x"]}`, string(body))

		writeEnvelope(t, w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"id": testNoteID, "title": "T"}})
	})

	note, err := a.CreateNote(context.Background(), models.NoteInput{Title: "T", Content: "C", Categories: models.Categories{"x"}})

	require.NoError(t, err)
	assert.Equal(t, testNoteID, note.ID)
}

func TestUpdateNote_SendsOnlyPatchedFields(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/"+testNoteID, r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"New"}`, string(body))

		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": testNoteID, "title": "New"}})
	})

	title := "New"
	note, err := a.UpdateNote(context.Background(), testNoteID, models.NotePatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "New", note.Title)
}

func TestArchiveAndUnarchive(t *testing.T) {
	var paths []string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		paths = append(paths, r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"id": testNoteID}})
	})

	_, err := a.ArchiveNote(context.Background(), testNoteID)
	require.NoError(t, err)
	_, err = a.UnarchiveNote(context.Background(), testNoteID)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/api/notes/" + testNoteID + "/archive",
		"/api/notes/" + testNoteID + "/unarchive",
	}, paths)
}

func TestDeleteNote_NotFound(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeEnvelope(t, w, http.StatusNotFound, map[string]any{"success": false, "error": "Note not found"})
	})

	err := a.DeleteNote(context.Background(), testNoteID)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Note not found")
}

func TestDeleteNote_Success(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"message": "Note deleted successfully"}})
	})

	assert.NoError(t, a.DeleteNote(context.Background(), testNoteID))
}

// ── misc ──

func TestHealthAndVersion(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "message": "Server is running"})
		case "/api/version":
			writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"version": "1.2.3"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	require.NoError(t, a.Health(context.Background()))
	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestMapHTTPError_NonEnvelopeBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	})

	err := a.Health(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 502: upstream down", err.Error())
}

func TestDecodeData_MalformedBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	})

	_, err := a.Me(context.Background())

	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestTooManyRequests(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusTooManyRequests, map[string]any{"success": false, "error": "slow down"})
	})

	_, err := a.Login(context.Background(), models.LoginRequest{})

	assert.ErrorIs(t, err, ErrTooManyRequests)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()

	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(body)
}

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		body           string
		wantGzipped    bool
	}{
		{name: "client accepts gzip", acceptEncoding: "gzip", body: `{"success":true}`, wantGzipped: true},
		{name: "client does not accept gzip", acceptEncoding: "", body: `{"success":true}`},
		{name: "gzip among several encodings", acceptEncoding: "deflate, gzip, br", body: "hello", wantGzipped: true},
		{name: "gzip with quality values", acceptEncoding: "gzip;q=1.0, identity;q=0.5", body: "hello", wantGzipped: true},
		{name: "large body", acceptEncoding: "gzip", body: strings.Repeat("note ", 2000), wantGzipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rr.Body.String())
			}
		})
	}
}

func TestWithGZip_ImplicitHeaderIsCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("no explicit header"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "no explicit header", gunzip(t, rr.Body))
}

func TestWithGZip_AlreadyEncodedPassesThrough(t *testing.T) {
	encoded := gzipBytes(t, []byte("metrics")).Bytes()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(encoded)
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, encoded, rr.Body.Bytes())
	assert.Equal(t, "metrics", gunzip(t, rr.Body))
}

func TestWithGZip_Request(t *testing.T) {
	tests := []struct {
		name            string
		contentEncoding string
		body            io.Reader
		wantStatus      int
		wantBody        string
	}{
		{
			name:            "gzipped body is decoded",
			contentEncoding: "gzip",
			body:            gzipBytes(t, []byte(`{"title":"T"}`)),
			wantStatus:      http.StatusOK,
			wantBody:        `{"title":"T"}`,
		},
		{
			name:            "gzip among several encodings",
			contentEncoding: "gzip, deflate",
			body:            gzipBytes(t, []byte("data")),
			wantStatus:      http.StatusOK,
			wantBody:        "data",
		},
		{
			name:            "invalid gzip body",
			contentEncoding: "gzip",
			body:            strings.NewReader("not gzipped"),
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/notes", tt.body)
			req.Header.Set("Content-Encoding", tt.contentEncoding)
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, gotBody)
			} else {
				assert.JSONEq(t, `{"success":false,"error":"Invalid data provided"}`, rr.Body.String())
			}
		})
	}
}

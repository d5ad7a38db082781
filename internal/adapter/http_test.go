// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/case-mirror/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(serverURL string, pageLimit int) RemoteCaseGateway {
	return NewHTTPCaseGateway(HTTPGatewayConfig{
		BaseURI:   serverURL,
		APIUser:   "svc-user",
		APIKey:    "svc-key",
		PageLimit: pageLimit,
	})
}

func pageBody(next *string, objects ...string) string {
	raw := make([]json.RawMessage, 0, len(objects))
	for _, o := range objects {
		raw = append(raw, json.RawMessage(o))
	}
	page := models.CasePage{
		Meta:    models.PageMeta{Limit: len(objects), Next: next, TotalCount: len(objects)},
		Objects: raw,
	}
	b, _ := json.Marshal(page)
	return string(b)
}

// ── ListPage ────────────────────────────────────────────────────────────────

func TestListPage_AuthHeaderAndPaging(t *testing.T) {
	nextPage := "/case/?limit=2&offset=2"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/case/", r.URL.Path)
		assert.Equal(t, "apikey svc-user:svc-key", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		switch r.URL.Query().Get("offset") {
		case "0":
			fmt.Fprint(w, pageBody(&nextPage, `{"id": 1, "name": "first"}`, `{"id": 2, "name": "second"}`))
		case "2":
			fmt.Fprint(w, pageBody(nil, `{"id": 3, "name": "third"}`))
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 2)

	cases, next, err := g.ListPage(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "1", cases[0].ID)
	assert.Equal(t, "2", cases[1].ID)
	assert.Equal(t, 2, next)

	cases, next, err = g.ListPage(context.Background(), next)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, "3", cases[0].ID)
	assert.Equal(t, NoNextPage, next)
}

func TestListPage_ServerFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	_, _, err := g.ListPage(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestListPage_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	g := newTestGateway(srv.URL, 10)
	_, _, err := g.ListPage(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestListPage_ObjectWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pageBody(nil, `{"name": "orphan"}`))
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	_, _, err := g.ListPage(context.Background(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNoCaseID)
}

// ── CreateCase ──────────────────────────────────────────────────────────────

func TestCreateCase_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/case/", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 42, "name": "new case", "status": "open"}`)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	c, err := g.CreateCase(context.Background(), json.RawMessage(`{"name": "new case"}`))

	require.NoError(t, err)
	assert.Equal(t, "42", c.ID)
	assert.JSONEq(t, `{"id": 42, "name": "new case", "status": "open"}`, string(c.Attributes))
}

func TestCreateCase_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"title": "Bad Request"}`)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	_, err := g.CreateCase(context.Background(), json.RawMessage(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteValidation)
}

// ── UpdateCase ──────────────────────────────────────────────────────────────

func TestUpdateCase_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/case/42/", r.URL.Path)

		fmt.Fprint(w, `{"id": 42, "status": "closed"}`)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	c, err := g.UpdateCase(context.Background(), "42", json.RawMessage(`{"status": "closed"}`))

	require.NoError(t, err)
	assert.Equal(t, "42", c.ID)
}

func TestUpdateCase_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	_, err := g.UpdateCase(context.Background(), "404", json.RawMessage(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteNotFound)
}

// ── DeleteCase ──────────────────────────────────────────────────────────────

func TestDeleteCase_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/case/7/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	assert.NoError(t, g.DeleteCase(context.Background(), "7"))
}

func TestDeleteCase_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := newTestGateway(srv.URL, 10)
	err := g.DeleteCase(context.Background(), "7")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteUnauthorized)
}

package errmodel

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Fatal("From(nil) != nil")
	}

	orig := Stream("live_stream_failed", "stream broke", nil, errors.New("conn reset"))
	if got := From(orig); got != orig {
		t.Fatalf("From on *Error returned %v", got)
	}
	wrapped := errors.Join(errors.New("outer"), orig)
	if got := From(wrapped); got != orig {
		t.Fatalf("From did not unwrap, got %v", got)
	}

	plain := From(errors.New("plain"))
	if plain.Category != CategorySystem || plain.Code != "internal" {
		t.Fatalf("plain error converted to %+v", plain)
	}
}

func TestIsCategory(t *testing.T) {
	err := Snapshot("no_store", "no snapshot store", nil, nil)
	if !IsCategory(err, CategorySnapshot) {
		t.Fatal("snapshot error not in snapshot category")
	}
	if IsCategory(err, CategoryStream) {
		t.Fatal("snapshot error matched stream category")
	}
	if IsCategory(nil, CategorySystem) {
		t.Fatal("nil error matched a category")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("bad_json", "", nil), http.StatusBadRequest},
		{Validation("not_found", "", nil), http.StatusNotFound},
		{Validation("conflict", "", nil), http.StatusConflict},
		{Snapshot("save_failed", "", nil, nil), http.StatusBadGateway},
		{Stream("recovery_failed", "", nil, nil), http.StatusBadGateway},
		{System("internal", "", nil, nil), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWriteHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	WriteHTTP(rec, req, Validation("missing_entity_id", "entity_id is required", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Error Error `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "missing_entity_id" {
		t.Fatalf("body error = %+v", body.Error)
	}
}

func TestContextTruncation(t *testing.T) {
	long := strings.Repeat("x", 1000)
	err := System("internal", long, map[string]any{"detail": long}, nil)
	if len(err.Message) > 512 {
		t.Fatalf("message length = %d", len(err.Message))
	}
	if s, ok := err.Context["detail"].(string); !ok || len(s) > 256 {
		t.Fatalf("context detail not truncated: %v", err.Context["detail"])
	}
}

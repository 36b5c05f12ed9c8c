package missions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type stubProvider struct {
	missions []Mission
	err      error
}

func (s stubProvider) Missions(context.Context, int) ([]Mission, error) {
	return s.missions, s.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestFallbackHasThree(t *testing.T) {
	if got := len(Fallback()); got != MaxMissions {
		t.Errorf("len(Fallback()) = %d, want %d", got, MaxMissions)
	}
}

func TestLoadFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
	}{
		{"nil provider", nil},
		{"not configured", stubProvider{err: ErrNotConfigured}},
		{"failure", stubProvider{err: errors.New("boom")}},
		{"empty list", stubProvider{}},
		{"unconfigured http", NewHTTPProvider("", "", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Load(context.Background(), tt.provider, 3, quietLogger())
			if !reflect.DeepEqual(got, Fallback()) {
				t.Errorf("Load() = %+v, want fallback", got)
			}
		})
	}
}

func TestLoadLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	Load(context.Background(), stubProvider{err: errors.New("boom")}, 0, log.New(&buf))
	if out := buf.String(); !strings.Contains(out, "error=boom") {
		t.Errorf("log output %q lacks error=boom", out)
	}
}

func TestLoadTruncates(t *testing.T) {
	p := stubProvider{missions: []Mission{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}}
	got := Load(context.Background(), p, 0, quietLogger())
	if len(got) != MaxMissions || got[0].ID != "a" || got[2].ID != "c" {
		t.Errorf("Load() = %+v, want first three in order", got)
	}
}

func TestHTTPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer key" {
			t.Errorf("Authorization = %q", got)
		}
		var req missionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.RunCount != 7 {
			t.Errorf("run_count = %d, want 7", req.RunCount)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"missions":[{"id":"x1","description":"Jump 10 times","completed":true}]}`)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "key", time.Second)
	got, err := p.Missions(context.Background(), 7)
	if err != nil {
		t.Fatalf("Missions() failed: %v", err)
	}
	want := []Mission{{ID: "x1", Description: "Jump 10 times", Completed: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missions() = %+v, want %+v", got, want)
	}
}

func TestHTTPProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "{not json")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			p := NewHTTPProvider(srv.URL, "key", time.Second)
			if _, err := p.Missions(context.Background(), 1); err == nil {
				t.Fatal("expected error")
			}
			if got := Load(context.Background(), p, 1, quietLogger()); !reflect.DeepEqual(got, Fallback()) {
				t.Errorf("Load() = %+v, want fallback", got)
			}
		})
	}
}

func TestHTTPProviderNotConfigured(t *testing.T) {
	_, err := NewHTTPProvider("http://example.invalid", "", 0).Missions(context.Background(), 1)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

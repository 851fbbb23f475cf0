package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/presize/internal/sizing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewRouter(NewIPRateLimiter(1000, 1000)))
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSize(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/size", `{"grid": {"x": "6x2", "y": "7x2"}, "column": {"shape": "square"}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var s sizing.Schedule
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("decoding schedule: %v", err)
	}
	if got := s.Columns[0].Section(); got != "650x650" {
		t.Errorf("ground column = %s, want 650x650", got)
	}
	if s.Parameters.Floors != 10 {
		t.Errorf("floors = %d, want the default 10", s.Parameters.Floors)
	}
}

func TestEmptyBodyUsesDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp := post(t, ts.URL+"/api/tables", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var tables []sizing.Table
	if err := json.NewDecoder(resp.Body).Decode(&tables); err != nil {
		t.Fatal(err)
	}
	if len(tables) != 4 || tables[0].Key != sizing.TableSlab {
		t.Errorf("got %d tables", len(tables))
	}
}

func TestBadRequest(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name, path, body string
	}{
		{"malformed json", "/api/size", `{"grid": `},
		{"unknown field", "/api/size", `{"colour": "red"}`},
		{"bad list", "/api/size", `{"grid": {"x": "6, abc"}}`},
		{"invalid span", "/api/size", `{"grid": {"x": "6, -1"}}`},
		{"unknown grade", "/api/tables", `{"materials": {"concrete": "C99"}}`},
		{"bad format", "/api/diagram/plan?format=gif", `{}`},
		{"bad floor", "/api/diagram/elevation?floor=top", `{}`},
		{"infinite span", "/api/size", `{"grid": {"x": "6, inf"}}`},
		{"nan height", "/api/size", `{"floor_heights": "nan"}`},
		{"oversized repeat", "/api/size", `{"floor_heights": "3.3x50000000"}`},
		{"too many floors", "/api/size", `{"floors": 50000000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+tt.path, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	body := `{"name": "` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/size", strings.NewReader(body))
	rec := httptest.NewRecorder()

	(&Handler{}).Size(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestExports(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path, contentType, magic string
	}{
		{"/api/export/xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "PK"},
		{"/api/export/pdf", "application/pdf", "%PDF"},
		{"/api/diagram/plan", "image/png", "\x89PNG"},
		{"/api/diagram/elevation?floor=3&format=svg", "image/svg+xml", "<svg"},
	}
	for _, tt := range tests {
		resp := post(t, ts.URL+tt.path, `{"name": "Tower"}`)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: status = %d", tt.path, resp.StatusCode)
			continue
		}
		if got := resp.Header.Get("Content-Type"); got != tt.contentType {
			t.Errorf("%s: content type = %q, want %q", tt.path, got, tt.contentType)
		}
		var buf bytes.Buffer
		buf.ReadFrom(resp.Body)
		if got := resp.Header.Get("Content-Length"); got != strconv.Itoa(buf.Len()) {
			t.Errorf("%s: content length = %s, body is %d bytes", tt.path, got, buf.Len())
		}
		if !bytes.Contains(buf.Bytes(), []byte(tt.magic)) {
			t.Errorf("%s: body starts %q", tt.path, buf.Bytes()[:min(8, buf.Len())])
		}
	}

	resp := post(t, ts.URL+"/api/export/xlsx", `{"name": "Tower"}`)
	if got := resp.Header.Get("Content-Disposition"); got != `attachment; filename="Tower_Calc.xlsx"` {
		t.Errorf("disposition = %q", got)
	}
}

func TestWriteJSONUnsupportedValue(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, map[string]float64{"load": math.Inf(1)})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Header().Get("Content-Type"), "json") {
		t.Errorf("content type = %q after a failed encode", rec.Header().Get("Content-Type"))
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestRateLimit(t *testing.T) {
	ts := httptest.NewServer(NewRouter(NewIPRateLimiter(0.001, 2)))
	defer ts.Close()

	var codes []int
	for range 3 {
		resp, err := http.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v, want [200 200 429]", codes)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PRESIZE_ADDR", "")
	t.Setenv("PRESIZE_RATE", "")
	t.Setenv("PRESIZE_BURST", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != DefaultAddr || cfg.Rate != DefaultRate || cfg.Burst != DefaultBurst {
		t.Errorf("defaults = %+v", cfg)
	}

	t.Setenv("PRESIZE_ADDR", "127.0.0.1:9090")
	t.Setenv("PRESIZE_BURST", "3")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != "127.0.0.1:9090" || cfg.Burst != 3 {
		t.Errorf("config = %+v", cfg)
	}

	t.Setenv("PRESIZE_RATE", "-1")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for negative rate")
	}
}

func TestStartStops(t *testing.T) {
	s := New(Config{Addr: "127.0.0.1:0", Rate: 1, Burst: 1})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New("", nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestDefaults(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/defaults")
	if err != nil {
		t.Fatalf("GET /api/v1/defaults: %v", err)
	}
	defer resp.Body.Close()

	var opts pipeline.Options
	if err := json.NewDecoder(resp.Body).Decode(&opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if opts.Params != layout.DefaultParams() {
		t.Errorf("params = %+v, want defaults", opts.Params)
	}
}

func TestLayoutEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/layout", pipeline.Options{Params: layout.DefaultParams()})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out struct {
		ID      string         `json:"id"`
		Width   float64        `json:"width"`
		Metrics layout.Metrics `json:"metrics"`
		Rects   []json.RawMessage `json:"rects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID == "" {
		t.Error("missing layout id")
	}
	if out.Metrics.Beds != 5 {
		t.Errorf("beds = %d, want 5", out.Metrics.Beds)
	}
	if len(out.Rects) != 10 {
		t.Errorf("rects = %d, want 10", len(out.Rects))
	}
}

func TestLayoutEndpointRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)

	t.Run("unknown field", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/layout", "application/json",
			strings.NewReader(`{"prams": {}}`))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("bad orientation", func(t *testing.T) {
		resp := postJSON(t, ts.URL+"/api/v1/layout",
			pipeline.Options{Params: layout.Params{Orientation: "diagonal"}})
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
		var out struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Error.Code != "INVALID_ORIENTATION" {
			t.Errorf("error code = %q, want INVALID_ORIENTATION", out.Error.Code)
		}
	})
}

func TestRenderEndpoint(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
		sniff       string
	}{
		{"svg", "image/svg+xml", "<svg"},
		{"csv", "text/csv", "type,x,y"},
		{"json", "application/json", "{"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/api/v1/render", pipeline.Options{
				Params:  layout.DefaultParams(),
				Formats: []string{tt.format},
			})
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if got := resp.Header.Get("Content-Type"); got != tt.contentType {
				t.Errorf("content type = %q, want %q", got, tt.contentType)
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("read body: %v", err)
			}
			if !strings.HasPrefix(string(body), tt.sniff) {
				t.Errorf("body does not start with %q: %.40q", tt.sniff, body)
			}
		})
	}
}

func TestRenderEndpointRejectsMultipleFormats(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/render", pipeline.Options{
		Params:  layout.DefaultParams(),
		Formats: []string{"svg", "png"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderEndpointRejectsUnknownFormat(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/v1/render", pipeline.Options{
		Params:  layout.DefaultParams(),
		Formats: []string{"pdf"},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

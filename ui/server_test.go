package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dhamidi/exped/editor"
	"github.com/dhamidi/exped/layout"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := editor.DefaultConfig()
	cfg.Expression = "a+b+c"
	cfg.Metrics = layout.DefaultMetrics
	s, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer error = %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, editor.Snapshot) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var snap editor.Snapshot
	if rec.Header().Get("Content-Type") == "application/json" {
		if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("%s %s: invalid JSON: %v", method, path, err)
		}
	}
	return rec, snap
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`id="text"`, `/static/editor.js`, `class="run literal`} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestStatic(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/static/editor.js", "/static/editor.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK || rec.Body.Len() == 0 {
			t.Errorf("GET %s: status %d, %d bytes", path, rec.Code, rec.Body.Len())
		}
		if path == "/static/editor.js" && !strings.Contains(rec.Body.String(), "seq: ++seq") {
			t.Error("editor.js does not number pointer events")
		}
	}
}

func TestState(t *testing.T) {
	s := newTestServer(t)
	rec, snap := do(t, s, http.MethodGet, "/state", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if snap.Infix != "a+b+c" || !snap.Valid || len(snap.Runs) != 5 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestParse(t *testing.T) {
	s := newTestServer(t)

	rec, snap := do(t, s, http.MethodPost, "/parse", `{"text": "2*x+3"}`)
	if rec.Code != http.StatusOK || snap.Infix != "2*x+3" {
		t.Fatalf("status %d snapshot %+v", rec.Code, snap)
	}

	rec, snap = do(t, s, http.MethodPost, "/parse", `{"text": "2*(x"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if snap.Valid || snap.Error == "" {
		t.Errorf("failed parse snapshot = %+v", snap)
	}
	if snap.Infix != "2*x+3" || snap.Text != "2*(x" {
		t.Errorf("infix %q text %q after failed parse", snap.Infix, snap.Text)
	}

	_, snap = do(t, s, http.MethodPost, "/edit", "")
	if !snap.Valid || snap.Error != "" {
		t.Errorf("edit did not clear the error: %+v", snap)
	}

	rec, _ = do(t, s, http.MethodPost, "/parse", `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad JSON status = %d, want 400", rec.Code)
	}
}

func TestParseForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"text": {"x*y"}}
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	form = url.Values{"text": {"x*"}}
	req = httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="invalid"`) {
		t.Error("page does not mark the input invalid")
	}
}

func TestPressDragRelease(t *testing.T) {
	s := newTestServer(t)

	// "a + b + c": b occupies [4, 5).
	_, snap := do(t, s, http.MethodPost, "/press", `{"x": 4.5, "y": 0.5}`)
	if snap.Focus != "b" || len(snap.Ghost) != 1 {
		t.Fatalf("press snapshot = %+v", snap)
	}

	_, snap = do(t, s, http.MethodPost, "/drag", `{"x": 0.5, "y": 0.5}`)
	if snap.Infix != "b+a+c" {
		t.Errorf("after drag infix = %q, want b+a+c", snap.Infix)
	}
	if g := snap.Ghost[0]; g.X != 0 {
		t.Errorf("ghost at %v, want 0", g.X)
	}

	_, snap = do(t, s, http.MethodPost, "/release", "")
	if len(snap.Ghost) != 0 || snap.Infix != "b+a+c" {
		t.Errorf("release snapshot = %+v", snap)
	}

	rec, _ := do(t, s, http.MethodPost, "/press", "nope")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad press status = %d, want 400", rec.Code)
	}
}

func TestPointerEventsInOrder(t *testing.T) {
	tests := []struct {
		name   string
		events [][2]string
		want   string
	}{
		{
			name: "drag there and back",
			events: [][2]string{
				{"/press", `{"x": 4.5, "y": 0.5, "seq": 1}`},
				{"/drag", `{"x": 0.5, "y": 0.5, "seq": 2}`},
				{"/drag", `{"x": 4.5, "y": 0.5, "seq": 3}`},
				{"/release", `{"seq": 4}`},
			},
			want: "a+b+c",
		},
		{
			name: "late drag is dropped",
			events: [][2]string{
				{"/press", `{"x": 4.5, "y": 0.5, "seq": 1}`},
				{"/drag", `{"x": 0.5, "y": 0.5, "seq": 3}`},
				{"/drag", `{"x": 4.5, "y": 0.5, "seq": 2}`},
				{"/release", `{"seq": 4}`},
			},
			want: "b+a+c",
		},
		{
			name: "late release is dropped",
			events: [][2]string{
				{"/press", `{"x": 4.5, "y": 0.5, "seq": 1}`},
				{"/drag", `{"x": 0.5, "y": 0.5, "seq": 3}`},
				{"/release", `{"seq": 2}`},
			},
			want: "b+a+c",
		},
		{
			// Release keeps the focus on b, so the first press of
			// the new page climbs back to the root.
			name: "reloaded page starts over",
			events: [][2]string{
				{"/press", `{"x": 4.5, "y": 0.5, "seq": 7}`},
				{"/release", `{"seq": 8}`},
				{"/press", `{"x": 0.5, "y": 0.5, "seq": 1}`},
				{"/press", `{"x": 0.5, "y": 0.5, "seq": 2}`},
				{"/drag", `{"x": 4.5, "y": 0.5, "seq": 3}`},
				{"/release", `{"seq": 4}`},
			},
			want: "b+a+c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			var snap editor.Snapshot
			for _, ev := range tt.events {
				var rec *httptest.ResponseRecorder
				rec, snap = do(t, s, http.MethodPost, ev[0], ev[1])
				if rec.Code != http.StatusOK {
					t.Fatalf("%s %s: status %d", ev[0], ev[1], rec.Code)
				}
			}
			if snap.Infix != tt.want {
				t.Errorf("infix = %q, want %q", snap.Infix, tt.want)
			}
		})
	}
}

func TestNewServerRejectsBadExpression(t *testing.T) {
	cfg := editor.DefaultConfig()
	cfg.Expression = "a+"
	if _, err := NewServer(cfg); err == nil {
		t.Error("NewServer succeeded with a bad expression")
	}
}

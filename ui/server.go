package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/dhamidi/exped/editor"
	"github.com/dhamidi/exped/expr/parser"

	"github.com/tliron/commonlog"
)

//go:embed static templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("exped.ui")

type Server struct {
	mu      sync.Mutex
	session *editor.Session
	seq     uint64

	staticFS   fs.FS
	templateFS fs.FS
	funcMap    template.FuncMap
	mux        *http.ServeMux
}

// Point is the body of the pointer endpoints. Seq numbers the events
// of one page in the order they happened; zero means unnumbered.
type Point struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Seq uint64  `json:"seq,omitempty"`
}

type parseRequest struct {
	Text string `json:"text"`
}

func NewServer(config editor.Config) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"lines": func(s string) []string {
			return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
		},
	}

	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	session, err := editor.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s := &Server{
		session:    session,
		staticFS:   staticFS,
		templateFS: templateFS,
		funcMap:    funcMap,
		mux:        http.NewServeMux(),
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /state", s.handleState)
	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("POST /edit", s.handleEdit)
	s.mux.HandleFunc("POST /press", s.handlePress)
	s.mux.HandleFunc("POST /drag", s.handleDrag)
	s.mux.HandleFunc("POST /release", s.handleRelease)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Debugf("%s %s", r.Method, r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("Content-Type") == "application/json" ||
		r.Header.Get("Accept") == "application/json"
}

func (s *Server) snapshot() editor.Snapshot {
	return s.session.Snapshot()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.snapshot()
	s.mu.Unlock()

	if r.Header.Get("Accept") == "application/json" {
		writeJSON(w, http.StatusOK, snap)
		return
	}
	s.render(w, http.StatusOK, "index.html", snap)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest

	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Text = r.FormValue("text")
	}

	s.mu.Lock()
	err := s.session.Parse(req.Text)
	snap := s.snapshot()
	s.mu.Unlock()

	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, parser.ErrParse) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		status = http.StatusUnprocessableEntity
		snap.Text = req.Text
	}

	if wantsJSON(r) {
		writeJSON(w, status, snap)
		return
	}
	if status == http.StatusOK {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, status, "index.html", snap)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Edit()
	writeJSON(w, http.StatusOK, s.snapshot())
}

func decodePoint(w http.ResponseWriter, r *http.Request) (Point, bool) {
	var p Point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return p, false
	}
	return p, true
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePoint(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// A press starts a new gesture, possibly from a reloaded page.
	s.seq = p.Seq
	s.session.Press(p.X, p.Y)
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePoint(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inOrder(p) {
		s.session.Drag(p.X, p.Y)
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	p, ok := decodePoint(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inOrder(p) {
		s.session.Release()
	}
	writeJSON(w, http.StatusOK, s.snapshot())
}

// inOrder reports whether p comes after the last applied event of the
// gesture. Late events are dropped so swaps follow the pointer's order.
// Callers hold s.mu.
func (s *Server) inOrder(p Point) bool {
	if p.Seq == 0 {
		return true
	}
	if p.Seq <= s.seq {
		log.Debugf("dropping pointer event %d after %d", p.Seq, s.seq)
		return false
	}
	s.seq = p.Seq
	return true
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// overlayFS serves files from primaryPath on disk when present, so the
// page can be edited without rebuilding, and falls back to secondary.
type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}

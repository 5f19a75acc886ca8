// Package site serves the loaded content records over HTTP: HTML pages
// for readers and a small JSON API. It never touches the filesystem
// layout directly beyond the content.Store it is given.
package site

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/yuin/goldmark"

	"github.com/JoshuaShepherd/rethink-content/internal/content"
	"github.com/JoshuaShepherd/rethink-content/internal/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Server wires the content store, templates, and routes together.
type Server struct {
	store     *content.Store
	templates *template.Template
	mux       *http.ServeMux

	mu      sync.RWMutex
	cached  []*content.Record
	watcher *fsnotify.Watcher
}

// NewServer constructs an HTTP handler ready to serve content pages.
func NewServer(store *content.Store) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/home.gohtml", "templates/principle.gohtml", "templates/notfound.gohtml")
	if err != nil {
		return nil, err
	}

	srv := &Server{
		store:     store,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	srv.mux.HandleFunc("/", srv.handleHome)
	srv.mux.HandleFunc("/principles/", srv.handlePrinciple)
	srv.mux.HandleFunc("/api/principles", srv.handleAPIList)
	srv.mux.HandleFunc("/api/principles/", srv.handleAPIGet)

	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Watch invalidates the record cache whenever the content root changes,
// so edits show up without a restart.
func (s *Server) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.store.Root); err != nil {
		watcher.Close()
		return err
	}

	s.watcher = watcher
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				logger.Debug("content change: %s", ev)
				s.invalidate()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("content watch: %v", err)
			}
		}
	}()
	return nil
}

// Close stops the content watcher, if one was started.
func (s *Server) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

func (s *Server) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// records returns the loaded content records, loading and caching them
// on first use.
func (s *Server) records() []*content.Record {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		recs := s.store.LoadAll()
		if recs == nil {
			recs = []*content.Record{}
		}
		s.cached = recs
	}
	return s.cached
}

func (s *Server) findRecord(slug string) *content.Record {
	for _, rec := range s.records() {
		if rec.Slug == slug {
			return rec
		}
	}
	return nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w)
		return
	}

	data := struct {
		Principles []*content.Record
	}{
		Principles: s.records(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "home.gohtml", data); err != nil {
		logger.Warn("render home: %v", err)
	}
}

func (s *Server) handlePrinciple(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/principles/")
	rec := s.findRecord(slug)
	if slug == "" || rec == nil {
		// Missing content renders the same as content not yet
		// available; a bad slug never crashes a page render.
		s.renderNotFound(w)
		return
	}

	body, err := renderMarkdown(rec.Body)
	if err != nil {
		logger.Warn("render %s: %v", slug, err)
		s.renderNotFound(w)
		return
	}

	data := struct {
		Record *content.Record
		Body   template.HTML
	}{
		Record: rec,
		Body:   body,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "principle.gohtml", data); err != nil {
		logger.Warn("render principle %s: %v", slug, err)
	}
}

type recordJSON struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Order        *int     `json:"order,omitempty"`
	Content      string   `json:"content,omitempty"`
	KeyTakeaways []string `json:"keyTakeaways,omitempty"`
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	records := s.records()
	out := make([]recordJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, recordJSON{
			Slug:         rec.Slug,
			Title:        rec.Title,
			Summary:      rec.Summary,
			Order:        rec.Order,
			KeyTakeaways: rec.KeyTakeaways,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAPIGet(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/principles/")
	rec := s.findRecord(slug)
	if rec == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	writeJSON(w, http.StatusOK, recordJSON{
		Slug:         rec.Slug,
		Title:        rec.Title,
		Summary:      rec.Summary,
		Order:        rec.Order,
		Content:      rec.Body,
		KeyTakeaways: rec.KeyTakeaways,
	})
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := s.templates.ExecuteTemplate(w, "notfound.gohtml", nil); err != nil {
		logger.Warn("render not found: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response: %v", err)
	}
}

func renderMarkdown(body string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Package web serves the status page, its about page and a JSON endpoint.
package web

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/isopennextyet/internal/domain/commands"
	"github.com/rios0rios0/isopennextyet/internal/domain/entities"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second

	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders LoaderData over HTTP. Every page request runs one fresh
// resolution cycle.
type Server struct {
	settings  *entities.Settings
	aggregate commands.Aggregate
	templates *template.Template
	router    *mux.Router
}

type pageView struct {
	Title    string
	Meta     PageMeta
	Settings *entities.Settings
	Data     entities.LoaderData
}

// NewServer parses the embedded templates and registers all routes.
func NewServer(settings *entities.Settings, aggregate commands.Aggregate) (*Server, error) {
	templates, err := template.New("pages").
		Funcs(template.FuncMap{
			"status": statusWord,
			"days":   formatDays,
		}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	it := &Server{
		settings:  settings,
		aggregate: aggregate,
		templates: templates,
		router:    mux.NewRouter(),
	}
	it.routes()
	return it, nil
}

// Handler exposes the router, mainly for tests.
func (it *Server) Handler() http.Handler {
	return it.router
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (it *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", it.settings.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", it.settings.ListenAddress, err)
	}
	return it.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is done, then shuts down
// gracefully, letting in-flight requests finish.
func (it *Server) Serve(ctx context.Context, listener net.Listener) error {
	//nolint:exhaustruct // Minimal Server initialization with required fields only
	server := &http.Server{
		Handler:           it.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()
	logger.Infof("Listening on http://%s", listener.Addr())

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		<-serveErr
		return nil
	}
}

func (it *Server) routes() {
	it.router.Use(it.recoverMiddleware, logMiddleware)

	it.router.HandleFunc("/", it.homeHandler).Methods(http.MethodGet, http.MethodHead)
	it.router.HandleFunc("/about", it.aboutHandler).Methods(http.MethodGet, http.MethodHead)
	it.router.HandleFunc("/api/status", it.statusHandler).Methods(http.MethodGet)
	it.router.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)

	// mux skips router middleware for unmatched routes.
	it.router.NotFoundHandler = logMiddleware(it.recoverMiddleware(http.HandlerFunc(it.notFoundHandler)))
}

func (it *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	data := it.aggregate.Execute(r.Context(), it.settings)
	meta := GenerateHomePageMeta(it.settings, &data)

	it.render(w, http.StatusOK, "home.html", pageView{
		Title:    meta.Title,
		Meta:     meta,
		Settings: it.settings,
		Data:     data,
	})
}

func (it *Server) aboutHandler(w http.ResponseWriter, _ *http.Request) {
	it.render(w, http.StatusOK, "about.html", it.plainView("About - "+it.settings.SiteName))
}

func (it *Server) notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	it.render(w, http.StatusNotFound, "not_found.html", it.plainView("Not Found - "+it.settings.SiteName))
}

func (it *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	data := it.aggregate.Execute(r.Context(), it.settings)

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorf("Failed to encode status: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (it *Server) plainView(title string) pageView {
	return pageView{
		Title: title,
		Meta: PageMeta{
			Title: title,
			Tags: []MetaTag{
				{Name: "description", Content: it.settings.SiteName},
			},
		},
		Settings: it.settings,
	}
}

// render executes into a buffer first so a failing template never leaves a
// half-written page behind.
func (it *Server) render(w http.ResponseWriter, status int, name string, view pageView) {
	var buffer bytes.Buffer
	if err := it.templates.ExecuteTemplate(&buffer, name, view); err != nil {
		logger.Errorf("Failed to render %s: %v", name, err)
		it.renderError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, _ = buffer.WriteTo(w)
}

func (it *Server) renderError(w http.ResponseWriter) {
	var buffer bytes.Buffer
	if err := it.templates.ExecuteTemplate(&buffer, "error.html", it.plainView("Error - "+it.settings.SiteName)); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = buffer.WriteTo(w)
}

func (it *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Errorf("Recovered from panic serving %s: %v", r.URL.Path, recovered)
				it.renderError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		logger.WithFields(logger.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   recorder.status,
			"duration": time.Since(start).String(),
		}).Debug("Handled request")
	})
}

func formatDays(days *int) string {
	if days == nil {
		return "unknown"
	}
	return strconv.Itoa(*days)
}

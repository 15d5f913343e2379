// Package httpapi exposes the services over the public HTTP/JSON surface:
// health, signup/token/me, multipart upload, and the dataset read, summary
// and delete endpoints. Authentication is a bearer token in the
// Authorization header.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/datachart/internal/logging"
	"github.com/dmitrijs2005/datachart/internal/server/services"
	"github.com/gorilla/mux"
)

const apiVersion = "1.0.0"

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	ingest  *services.IngestService
	query   *services.QueryService
}

func NewServer(address string, l logging.Logger, us *services.UserService, is *services.IngestService, qs *services.QueryService) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   us,
		ingest:  is,
		query:   qs,
	}
}

// Handler is the full middleware chain. CORS wraps the router from outside
// so preflight requests get answered even when no route matches them.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.Router())
}

// Router assembles the route table. "/data/datasets" is registered before
// "/data/{id}" so the literal path wins.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/auth/token", s.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/auth/users/me", s.requireAuth(s.handleMe)).Methods(http.MethodGet)

	r.HandleFunc("/upload/", s.requireAuth(s.handleUpload)).Methods(http.MethodPost)

	r.HandleFunc("/data/datasets", s.requireAuth(s.handleListDatasets)).Methods(http.MethodGet)
	r.HandleFunc("/data/{id}/metadata", s.requireAuth(s.handleMetadata)).Methods(http.MethodGet)
	r.HandleFunc("/data/{id}/summary", s.requireAuth(s.handleSummary)).Methods(http.MethodGet)
	r.HandleFunc("/data/{id}/download", s.requireAuth(s.handleDownload)).Methods(http.MethodGet)
	r.HandleFunc("/data/{id}", s.requireAuth(s.handlePage)).Methods(http.MethodGet)
	r.HandleFunc("/data/{id}", s.requireAuth(s.handleDelete)).Methods(http.MethodDelete)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/permlens/permlens/pkg/config"
	"github.com/permlens/permlens/pkg/errors"
	"github.com/permlens/permlens/pkg/graph"
	"github.com/permlens/permlens/pkg/layout"
	"github.com/permlens/permlens/pkg/pipeline"
	"github.com/permlens/permlens/pkg/store"
)

// newServeCmd creates the serve command: an HTTP API for uploading
// permission graphs and fetching rendered diagrams of them.
func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the permission diagram HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			graphs, err := newGraphStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer graphs.Close(context.Background())

			diagrams := newRenderCache(ctx, cfg.Cache, logger)
			defer diagrams.Close()

			srv := &server{
				cfg:    cfg,
				logger: logger,
				graphs: graphs,
				runner: pipeline.NewRunner(diagrams, nil, logger),
			}

			httpSrv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           srv.routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", cfg.Server.Addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpSrv.Shutdown(shutdownCtx)
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// newGraphStore builds the graph store selected by config. Unlike the
// cache, a broken store is a hard error: the API is useless without it.
func newGraphStore(ctx context.Context, cfg config.StoreConfig) (store.GraphStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.Database)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown store backend: %q", cfg.Backend)
	}
}

// server carries the handler dependencies.
type server struct {
	cfg    config.Config
	logger *log.Logger
	graphs store.GraphStore
	runner *pipeline.Runner
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/graphs", func(r chi.Router) {
		r.Post("/", s.handleCreateGraph)
		r.Get("/", s.handleListGraphs)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetGraph)
			r.Delete("/", s.handleDeleteGraph)
			r.Get("/diagram.svg", s.handleDiagram)
		})
	})

	return r
}

// createGraphRequest is the upload body.
type createGraphRequest struct {
	Name  string      `json:"name"`
	Graph graph.Graph `json:"graph"`
}

func (s *server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	var req createGraphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if err := graph.Validate(req.Graph); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidGraph, err, "invalid graph"))
		return
	}

	g := store.NewStoredGraph(req.Name, graph.Normalize(req.Graph))
	if err := s.graphs.Put(r.Context(), g); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailed, err, "store graph"))
		return
	}

	s.logger.Info("graph stored", "id", g.ID, "nodes", len(g.Graph.Nodes))
	s.writeJSON(w, http.StatusCreated, g)
}

func (s *server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.graphs.List(r.Context())
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailed, err, "list graphs"))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGraph(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateGraphID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.graphs.Delete(r.Context(), id); err != nil {
		if err == store.ErrNotFound {
			s.writeError(w, r, errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id))
			return
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailed, err, "delete graph"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDiagram lays out and renders a stored graph. Layout options come
// from query parameters; the pipeline caches both stages.
func (s *server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGraph(w, r)
	if !ok {
		return
	}

	opts, err := s.cfg.LayoutOptions()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	if v := q.Get("direction"); v != "" {
		dir, err := layout.ParseDirection(v)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidDirection, err, "direction parameter"))
			return
		}
		opts.Direction = dir
	}
	if v := q.Get("strategy"); v != "" {
		strat, err := layout.ParseStrategy(v)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidStrategy, err, "strategy parameter"))
			return
		}
		opts.Strategy = strat
	}

	result, err := s.runner.Execute(r.Context(), g.Graph, pipeline.Options{
		Layout:   opts,
		Viewport: layout.ResolveViewport(q.Get("width"), q.Get("height")),
		Selected: q.Get("selected"),
		Title:    g.Name,
		Hover:    true,
		TTL:      s.cfg.Cache.Duration(),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeSVG(w, result.SVG)
}

// lookupGraph resolves the {id} path parameter to a stored graph,
// writing the error response itself on failure.
func (s *server) lookupGraph(w http.ResponseWriter, r *http.Request) (*store.StoredGraph, bool) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateGraphID(id); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}

	g, err := s.graphs.Get(r.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			s.writeError(w, r, errors.New(errors.ErrCodeGraphNotFound, "graph %s not found", id))
			return nil, false
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeStoreFailed, err, "load graph"))
		return nil, false
	}
	return g, true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *server) writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, status, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}

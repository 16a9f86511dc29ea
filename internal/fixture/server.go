package fixture

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fathomline/gridview/pkg/schema"
	"github.com/fathomline/gridview/pkg/types"
)

// batchable lists the resources that expose POST /{resource}/batch. The
// rest answer 404 on the batch route so the client's per-id fallback path
// stays exercised.
var batchable = map[string]bool{
	schema.ResourceUsers:      true,
	schema.ResourceCategories: true,
	schema.ResourceProducts:   true,
}

// lookupSchema validates a resource name against the built-in schemas.
func lookupSchema(resource string) (types.Schema, error) {
	return schema.Lookup(resource)
}

// Server serves the envelope API over a fixture store.
type Server struct {
	store  *Store
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewServer wraps a store in the HTTP API. A nil logger disables logging.
func NewServer(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{store: store, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{resource}", s.handleList)
	s.mux.HandleFunc("GET /{resource}/{id}", s.handleGet)
	s.mux.HandleFunc("POST /{resource}/batch", s.handleBatch)
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	if _, err := lookupSchema(resource); err != nil {
		s.writeError(w, http.StatusNotFound, "unknown resource")
		return
	}
	items, err := s.store.List(resource)
	if err != nil {
		s.logger.Error("fixture list failed", "resource", resource, "error", err)
		s.writeError(w, http.StatusInternalServerError, "list failed")
		return
	}
	s.writeJSON(w, http.StatusOK, types.ListEnvelope{
		Status: types.StatusSuccess,
		Data:   types.ListData{Items: items, Total: len(items)},
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	id := r.PathValue("id")
	if _, err := lookupSchema(resource); err != nil {
		s.writeError(w, http.StatusNotFound, "unknown resource")
		return
	}
	rec, err := s.store.Get(resource, id)
	if err == types.ErrNotFound {
		s.writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		s.logger.Error("fixture get failed", "resource", resource, "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, "get failed")
		return
	}
	s.writeJSON(w, http.StatusOK, types.ItemEnvelope{
		Status: types.StatusSuccess,
		Data:   types.ItemData{Item: rec},
	})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	resource := r.PathValue("resource")
	if _, err := lookupSchema(resource); err != nil || !batchable[resource] {
		s.writeError(w, http.StatusNotFound, "no batch endpoint")
		return
	}
	var req types.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed batch request")
		return
	}
	items, err := s.store.GetMany(resource, req.IDs)
	if err != nil {
		s.logger.Error("fixture batch failed", "resource", resource, "error", err)
		s.writeError(w, http.StatusInternalServerError, "batch failed")
		return
	}
	s.writeJSON(w, http.StatusOK, types.BatchEnvelope{
		Status: types.StatusSuccess,
		Data:   types.BatchData{Items: items},
	})
}

func (s *Server) writeError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, types.ListEnvelope{
		Status:  types.StatusError,
		Message: message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("fixture encode failed", "error", err)
	}
}

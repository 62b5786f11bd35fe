package dataset

import (
	"net/http"

	"go.uber.org/zap"

	"MockAPI/pkg/kit"
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.Store.Ready() {
		if s.Log != nil {
			s.Log.Warn("readyz failed: dataset not loaded")
		}
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCustomers(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Customers())
}

func (s *Server) handleProducts(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.Products())
}

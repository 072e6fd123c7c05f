package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"powervoting/pkg/contracts"
	httputil "powervoting/pkg/http"
	"powervoting/pkg/logger"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Contracts int    `json:"contracts"`
}

type HealthHandler struct {
	contracts *contracts.AddressBook
	log       *logger.Logger
}

func NewHealthHandler(book *contracts.AddressBook, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		contracts: book,
		log:       log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Contracts: h.contracts.Len(),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

// Ready reports ready once the address book has been built. An empty book is
// valid: every lookup then answers "not deployed".
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.contracts == nil {
		if err := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
		}); err != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Contracts: h.contracts.Len(),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}

package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"powervoting/internal/toolkit/service"
	httputil "powervoting/pkg/http"
	"powervoting/pkg/logger"
)

type ToolkitHandler struct {
	service service.ToolkitService
	log     *logger.Logger
}

func NewToolkitHandler(service service.ToolkitService, log *logger.Logger) *ToolkitHandler {
	return &ToolkitHandler{
		service: service,
		log:     log,
	}
}

func (h *ToolkitHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/markdown/text", h.MarkdownToText)
	router.POST("/api/v1/format/bytes", h.FormatBytes)
	router.POST("/api/v1/format/decimal", h.FormatDecimal)
	router.POST("/api/v1/fractions/simplify", h.SimplifyFraction)
	router.POST("/api/v1/hex/decode", h.DecodeHex)
	router.POST("/api/v1/encode/base64url", h.EncodeBase64URL)
	router.POST("/api/v1/duplicates", h.HasDuplicates)
	router.POST("/api/v1/validate/non-empty", h.IsNonEmpty)

	router.GET("/api/v1/contracts/:kind/networks/:networkId", h.ResolveContract)
	router.GET("/api/v1/networks/:networkId/actors/:actorId", h.ActorAddress)
}

func (h *ToolkitHandler) MarkdownToText(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "MarkdownToText", w, r, h.service.MarkdownToText)
}

func (h *ToolkitHandler) FormatBytes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "FormatBytes", w, r, h.service.FormatBytes)
}

func (h *ToolkitHandler) FormatDecimal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "FormatDecimal", w, r, h.service.FormatDecimal)
}

func (h *ToolkitHandler) SimplifyFraction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "SimplifyFraction", w, r, h.service.SimplifyFraction)
}

func (h *ToolkitHandler) DecodeHex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "DecodeHex", w, r, h.service.DecodeHex)
}

func (h *ToolkitHandler) EncodeBase64URL(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "EncodeBase64URL", w, r, h.service.EncodeBase64URL)
}

func (h *ToolkitHandler) HasDuplicates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "HasDuplicates", w, r, h.service.HasDuplicates)
}

func (h *ToolkitHandler) IsNonEmpty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	handleJSON(h, "IsNonEmpty", w, r, h.service.IsNonEmpty)
}

func (h *ToolkitHandler) ResolveContract(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	networkID, err := httputil.ParamInt64(ps, "networkId")
	if err != nil {
		h.writeError(w, "ResolveContract", err)
		return
	}

	resp, err := h.service.ResolveContract(r.Context(), ps.ByName("kind"), networkID)
	if err != nil {
		h.writeError(w, "ResolveContract", err)
		return
	}
	h.writeOK(w, "ResolveContract", resp)
}

func (h *ToolkitHandler) ActorAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	networkID, err := httputil.ParamInt64(ps, "networkId")
	if err != nil {
		h.writeError(w, "ActorAddress", err)
		return
	}
	actorID, err := httputil.ParamUint64(ps, "actorId")
	if err != nil {
		h.writeError(w, "ActorAddress", err)
		return
	}

	resp, err := h.service.ActorAddress(r.Context(), networkID, actorID)
	if err != nil {
		h.writeError(w, "ActorAddress", err)
		return
	}
	h.writeOK(w, "ActorAddress", resp)
}

// handleJSON decodes a Req body, runs op and writes its result.
func handleJSON[Req, Resp any](
	h *ToolkitHandler,
	name string,
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, *Req) (*Resp, error),
) {
	var req Req
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, name, err)
		return
	}

	resp, err := op(r.Context(), &req)
	if err != nil {
		h.writeError(w, name, err)
		return
	}
	h.writeOK(w, name, resp)
}

func (h *ToolkitHandler) writeOK(w http.ResponseWriter, name string, resp any) {
	if err := httputil.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", name, "operation", "WriteJSON", "error", err)
	}
}

func (h *ToolkitHandler) writeError(w http.ResponseWriter, name string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", name, "operation", "WriteError", "error", writeErr)
	}
}

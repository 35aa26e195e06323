package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aurumworks/showcase/internal/catalog"
	"github.com/aurumworks/showcase/internal/domain"
	"github.com/aurumworks/showcase/internal/intent"
	"github.com/aurumworks/showcase/internal/nav"
)

// Handler provides the read-only snapshot endpoints and the single intent
// channel the input layer writes through.
type Handler struct {
	store *catalog.Store
	loop  *intent.Loop
	ref   domain.ReferencePrice
}

// NewHandler creates a new API handler.
func NewHandler(store *catalog.Store, loop *intent.Loop, ref domain.ReferencePrice) *Handler {
	return &Handler{store: store, loop: loop, ref: ref}
}

type catalogResponse struct {
	catalog.Snapshot
	ReferencePrice domain.ReferencePrice `json:"referencePrice"`
}

// GetCatalog handles GET /api/v1/catalog.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Snapshot:       h.store.Snapshot(),
		ReferencePrice: h.ref,
	})
}

// GetGoldPrice handles GET /api/v1/goldprice.
func (h *Handler) GetGoldPrice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ref)
}

// intentRequest is the wire form of the three write operations.
type intentRequest struct {
	Type      string  `json:"type"` // "selectColor", "navigate", "swipe"
	Product   string  `json:"product,omitempty"`
	Color     string  `json:"color,omitempty"`
	Direction string  `json:"direction,omitempty"` // "previous" or "next"
	StartX    float64 `json:"startX,omitempty"`
	EndX      float64 `json:"endX,omitempty"`
}

// PostIntent handles POST /api/v1/intents.
func (h *Handler) PostIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	in, err := req.toIntent()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.loop.Dispatch(r.Context(), in)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, result)
	case errors.Is(err, catalog.ErrUnknownProduct):
		writeError(w, http.StatusNotFound, "unknown product")
	case errors.Is(err, catalog.ErrInvalidVariant):
		writeError(w, http.StatusBadRequest, "invalid color variant for product")
	default:
		slog.Error("failed to apply intent", "type", req.Type, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (r intentRequest) toIntent() (intent.Intent, error) {
	switch r.Type {
	case "selectColor":
		if r.Product == "" || r.Color == "" {
			return nil, errors.New("selectColor requires product and color")
		}
		return intent.SelectColor{Product: r.Product, Color: domain.ColorVariant(r.Color)}, nil

	case "navigate":
		switch nav.Direction(r.Direction) {
		case nav.Previous, nav.Next:
			return intent.Navigate{Direction: nav.Direction(r.Direction)}, nil
		}
		return nil, errors.New(`navigate requires direction "previous" or "next"`)

	case "swipe":
		return intent.Swipe{StartX: r.StartX, EndX: r.EndX}, nil

	default:
		return nil, errors.New("unknown intent type")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package api

import (
	"net/http"
	"time"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, handler *Handler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/catalog", handler.GetCatalog)
	mux.HandleFunc("GET /api/v1/goldprice", handler.GetGoldPrice)
	mux.HandleFunc("POST /api/v1/intents", handler.PostIntent)

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

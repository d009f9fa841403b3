package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	dotgraph "github.com/ritamzico/dotgraph"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// requestID stamps every response with an X-Request-Id header, so log
// lines on either side of a request can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type parseRequest struct {
	DOT     string `json:"dot"`
	Flatten bool   `json:"flatten"`
}

type parseResponse struct {
	Rendered string `json:"rendered"`
}

// handleParse parses, resolves, and (optionally) flattens the posted DOT
// source, returning the canonical rendering. Subgraph-discard diagnostics
// from a flatten request are collected and returned alongside the result
// rather than written to the server's own log.
func handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DOT == "" {
		writeError(w, http.StatusBadRequest, "missing field: dot")
		return
	}

	raw, err := dotgraph.Parse(req.DOT)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	resolved, err := dotgraph.Resolve(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if !req.Flatten {
		writeJSON(w, http.StatusOK, parseResponse{Rendered: dotgraph.RenderResolved(resolved)})
		return
	}

	var diagnostics []string
	sink := collectorSink{out: &diagnostics}
	flat := dotgraph.Flatten(resolved, sink)
	writeJSON(w, http.StatusOK, struct {
		parseResponse
		Diagnostics []string `json:"diagnostics,omitempty"`
	}{
		parseResponse: parseResponse{Rendered: dotgraph.RenderFlat(flat)},
		Diagnostics:   diagnostics,
	})
}

type collectorSink struct {
	out *[]string
}

func (s collectorSink) Write(msg string) {
	*s.out = append(*s.out, msg)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	port := flag.Int("port", 0, "port to listen on (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Post("/parse", handleParse)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("dotgraphd listening on %s\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

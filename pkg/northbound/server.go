// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

// Package northbound is the transport edge of the simulator: HTTP
// batch endpoints for the heatmap and BUR engines and a websocket
// streaming session per client. All modelling logic stays in the core
// packages; this layer only decodes requests and serializes results.
package northbound

import (
	"fmt"
	"net/http"

	"github.com/nfvri/ris-simulator/pkg/model"
	redisLib "github.com/nfvri/ris-simulator/pkg/store/redis"
	log "github.com/sirupsen/logrus"
)

// Server serves the batch and streaming interfaces.
type Server struct {
	port       int
	sessionCfg model.SimulationConfig
	cache      *redisLib.Store
}

// NewServer creates a northbound server. cache may be nil, in which
// case batch results are recomputed on every request.
func NewServer(port int, sessionCfg model.SimulationConfig, cache *redisLib.Store) *Server {
	return &Server{port: port, sessionCfg: sessionCfg, cache: cache}
}

// Serve blocks serving HTTP until the listener fails.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/heatmap", s.handleHeatmap)
	mux.HandleFunc("/api/bur", s.handleBUR)
	mux.HandleFunc("/api/scenario", s.handleScenario)
	mux.HandleFunc("/ws/simulation", s.handleSimulation)

	addr := fmt.Sprintf(":%d", s.port)
	log.Infof("Serving northbound API on %s", addr)
	return http.ListenAndServe(addr, allowCORS(mux))
}

// allowCORS mirrors the permissive policy of the original backend;
// the simulator is expected to sit behind its own deployment boundary.
func allowCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "RIS Simulator Backend - Live Position Updates"})
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package northbound

import (
	"encoding/json"
	"net/http"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/signal"
	redisLib "github.com/nfvri/ris-simulator/pkg/store/redis"
	log "github.com/sirupsen/logrus"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

// handleHeatmap computes a coverage heatmap. Invalid top-level
// parameters fail the whole request; there are no partial heatmaps.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := model.HeatmapRequest{
		GridSize:       50,
		GridExtent:     100,
		Height:         1.5,
		NumElements:    256,
		FrequencyGHz:   2.6,
		TxPowerDbm:     20.0,
		PhaseCoherence: 0.5,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := redisLib.CacheKey("heatmap", req)
	if s.cache != nil && key != "" {
		if cached, err := s.cache.GetHeatmap(r.Context(), key); err == nil {
			log.Debugf("heatmap cache hit for %s", key)
			writeJSON(w, cached)
			return
		}
	}

	res, err := signal.ComputeHeatmap(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.cache != nil && key != "" {
		if err := s.cache.AddHeatmap(r.Context(), key, res); err != nil {
			log.Warnf("failed to cache heatmap result: %v", err)
		}
	}
	writeJSON(w, res)
}

// handleScenario exports the scenario that seeds new streaming
// sessions, in the same YAML form the loader accepts.
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, err := s.sessionCfg.ExportYAML()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml")
	if _, err := w.Write(data); err != nil {
		log.Errorf("failed to write scenario response: %v", err)
	}
}

// handleBUR computes the Beneficial-UE-Ratio over the supplied
// receiver population.
func (s *Server) handleBUR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := model.BURRequest{
		NumElements:  40,
		FrequencyGHz: 3.5,
		ThresholdDb:  5.0,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := redisLib.CacheKey("bur", req)
	if s.cache != nil && key != "" {
		if cached, err := s.cache.GetBUR(r.Context(), key); err == nil {
			log.Debugf("bur cache hit for %s", key)
			writeJSON(w, cached)
			return
		}
	}

	res, err := signal.ComputeBUR(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.cache != nil && key != "" {
		if err := s.cache.AddBUR(r.Context(), key, res); err != nil {
			log.Warnf("failed to cache bur result: %v", err)
		}
	}
	writeJSON(w, res)
}

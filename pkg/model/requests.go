// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

// HeatmapRequest describes a coverage sweep over a square ground grid.
// RISRotation holds Euler angles [pitch, yaw, roll]; only the yaw (Y
// axis) component affects the surface normal. Pitch and roll are
// accepted and ignored, a limitation downstream clients rely on.
type HeatmapRequest struct {
	TxPos          Position   `json:"tx_pos"`
	RISPos         Position   `json:"ris_pos"`
	RISRotation    [3]float64 `json:"ris_rotation"`
	GridSize       int        `json:"grid_size"`
	GridExtent     float64    `json:"grid_extent"`
	Height         float64    `json:"height"`
	NumElements    int        `json:"n_elements"`
	FrequencyGHz   float64    `json:"frequency_ghz"`
	TxPowerDbm     float64    `json:"tx_power_dbm"`
	PhaseCoherence float64    `json:"phase_coherence"`
	// BoundaryThresholdDb, when positive, additionally solves the
	// benefit contour at that threshold and returns its points.
	BoundaryThresholdDb float64 `json:"boundary_threshold_db,omitempty"`
}

// HeatmapResult carries the four power grids plus scalar summaries.
type HeatmapResult struct {
	Heatmap        [][]float64 `json:"heatmap"`
	HeatmapDirect  [][]float64 `json:"heatmap_direct"`
	HeatmapRISOnly [][]float64 `json:"heatmap_ris_only"`
	HeatmapGain    [][]float64 `json:"heatmap_gain"`
	HeatmapRISGain [][]float64 `json:"heatmap_ris_gain"`
	XCoords        []float64   `json:"x_coords"`
	ZCoords        []float64   `json:"z_coords"`
	MinPower       float64     `json:"min_power"`
	MaxPower       float64     `json:"max_power"`
	MinGain        float64     `json:"min_gain"`
	MaxGain        float64     `json:"max_gain"`
	AvgGain        float64     `json:"avg_gain"`
	TxPowerDbm     float64     `json:"tx_power_dbm"`
	NumElements    int         `json:"n_elements"`
	BoundaryPoints []Position  `json:"boundary_points,omitempty"`
}

// BURRequest describes a Beneficial-UE-Ratio evaluation over an
// explicit receiver population.
type BURRequest struct {
	TxPos        Position   `json:"tx_pos"`
	RISPos       Position   `json:"ris_pos"`
	RxPositions  []Position `json:"rx_positions"`
	NumElements  int        `json:"n_elements"`
	FrequencyGHz float64    `json:"frequency_ghz"`
	ThresholdDb  float64    `json:"threshold_db"`
}

// UEResult is the per-receiver detail of a BUR evaluation.
type UEResult struct {
	RxPos        Position `json:"rx_pos"`
	RISPlDb      float64  `json:"ris_pl_db"`
	DirectPlDb   float64  `json:"direct_pl_db"`
	BenefitDb    float64  `json:"benefit_db"`
	IsBeneficial bool     `json:"is_beneficial"`
}

// BURResult is the outcome of a BUR evaluation.
type BURResult struct {
	BURPercent      float64    `json:"bur_percent"`
	BeneficialCount int        `json:"beneficial_count"`
	TotalUEs        int        `json:"total_ues"`
	ThresholdDb     float64    `json:"threshold_db"`
	MeanBenefitDb   float64    `json:"mean_benefit_db"`
	MedianBenefitDb float64    `json:"median_benefit_db"`
	StdDevBenefitDb float64    `json:"stddev_benefit_db"`
	PerUEResults    []UEResult `json:"per_ue_results"`
}

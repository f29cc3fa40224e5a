// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/nfvri/ris-simulator/pkg/manager"
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/signal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := getRootCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ris-simulator",
		Short:        "RIS propagation and benefit simulator",
		SilenceUsage: true,
		RunE:         runRootCommand,
	}
	cmd.Flags().Int("http-port", 8000, "HTTP port for the northbound API")
	cmd.Flags().String("scenario", "", "name of the scenario configuration to load")
	cmd.Flags().Bool("redis-enabled", false, "cache batch results in redis")
	cmd.Flags().String("log-level", "info", "logging verbosity")
	cmd.AddCommand(getHeatmapCommand())
	return cmd
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	httpPort, _ := cmd.Flags().GetInt("http-port")
	scenarioName, _ := cmd.Flags().GetString("scenario")
	redisEnabled, _ := cmd.Flags().GetBool("redis-enabled")
	logLevel, _ := cmd.Flags().GetString("log-level")

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	log.Info("Starting ris-simulator")

	cfg := manager.Config{
		HTTPPort:     httpPort,
		ScenarioName: scenarioName,
		RedisEnabled: redisEnabled,
	}
	mgr, err := manager.NewManager(&cfg)
	if err != nil {
		return err
	}
	defer mgr.Close()
	mgr.Run()
	return nil
}

// getHeatmapCommand computes one coverage heatmap offline and renders
// it to a PNG, without starting the server.
func getHeatmapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render a coverage heatmap to a PNG file",
		RunE:  runHeatmapCommand,
	}
	cmd.Flags().Float64Slice("tx-pos", []float64{0, 5, 0}, "transmitter position x,y,z")
	cmd.Flags().Float64Slice("ris-pos", []float64{10, 2.5, 10}, "surface position x,y,z")
	cmd.Flags().Float64("ris-yaw", 0, "surface yaw rotation in radians")
	cmd.Flags().Int("grid-size", 50, "points per axis")
	cmd.Flags().Float64("extent", 100, "grid side length in meters")
	cmd.Flags().Int("elements", 256, "number of surface elements")
	cmd.Flags().Float64("frequency", 2.6, "carrier frequency in GHz")
	cmd.Flags().Float64("coherence", 0.5, "phase coherence in [0,1]")
	cmd.Flags().String("output", "heatmap.png", "output PNG path")
	return cmd
}

func runHeatmapCommand(cmd *cobra.Command, args []string) error {
	txPos, _ := cmd.Flags().GetFloat64Slice("tx-pos")
	risPos, _ := cmd.Flags().GetFloat64Slice("ris-pos")
	risYaw, _ := cmd.Flags().GetFloat64("ris-yaw")
	gridSize, _ := cmd.Flags().GetInt("grid-size")
	extent, _ := cmd.Flags().GetFloat64("extent")
	elements, _ := cmd.Flags().GetInt("elements")
	frequency, _ := cmd.Flags().GetFloat64("frequency")
	coherence, _ := cmd.Flags().GetFloat64("coherence")
	output, _ := cmd.Flags().GetString("output")

	if len(txPos) != 3 || len(risPos) != 3 {
		return fmt.Errorf("tx-pos and ris-pos each need exactly three coordinates")
	}

	req := model.HeatmapRequest{
		TxPos:          model.Position{X: txPos[0], Y: txPos[1], Z: txPos[2]},
		RISPos:         model.Position{X: risPos[0], Y: risPos[1], Z: risPos[2]},
		RISRotation:    [3]float64{0, risYaw, 0},
		GridSize:       gridSize,
		GridExtent:     extent,
		Height:         1.5,
		NumElements:    elements,
		FrequencyGHz:   frequency,
		TxPowerDbm:     20.0,
		PhaseCoherence: coherence,
	}

	res, err := signal.ComputeHeatmap(req)
	if err != nil {
		return err
	}
	if err := signal.RenderHeatmap(res, output); err != nil {
		return err
	}
	log.Infof("wrote %s (%dx%d grid, power %.1f to %.1f dBm)",
		output, gridSize, gridSize, res.MinPower, res.MaxPower)
	return nil
}

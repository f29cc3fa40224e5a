// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/northbound"
	redisLib "github.com/nfvri/ris-simulator/pkg/store/redis"
	"github.com/nfvri/ris-simulator/pkg/utils"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Config is a manager configuration
type Config struct {
	HTTPPort     int
	ScenarioName string
	RedisEnabled bool
}

// Manager owns the simulator's long-lived state: the scenario used to
// seed new streaming sessions, the optional result cache and the
// northbound server.
type Manager struct {
	config    Config
	scenario  model.SimulationConfig
	server    *northbound.Server
	rdbClient *redis.Client
}

// NewManager creates a new manager
func NewManager(config *Config) (*Manager, error) {
	log.Info("Creating Manager")
	return &Manager{
		config:   *config,
		scenario: model.DefaultConfig(),
	}, nil
}

// Run starts the manager and the associated services
func (m *Manager) Run() {
	log.Info("Running Manager")
	if err := m.Start(); err != nil {
		log.Error("Unable to run Manager:", err)
	}
}

// Start loads the scenario, connects the cache and serves the
// northbound API. It blocks until the listener fails.
func (m *Manager) Start() error {
	if m.config.ScenarioName != "" {
		scenario := model.DefaultConfig()
		if err := model.Load(&scenario, m.config.ScenarioName); err != nil {
			log.Warnf("failed to load scenario %q, using built-in defaults: %v",
				m.config.ScenarioName, err)
		} else {
			m.scenario = scenario
		}
	}

	var cache *redisLib.Store
	if m.config.RedisEnabled {
		redisHost := utils.GetEnv("REDIS_HOST", "localhost")
		redisPort := utils.GetEnv("REDIS_PORT", "6379")
		redisDB := utils.GetEnv("REDIS_DB", "0")
		redisUsername := utils.GetEnv("REDIS_USERNAME", "")
		redisPassword := utils.GetEnv("REDIS_PASSWORD", "")
		rdbClient, err := redisLib.InitClient(redisHost, redisPort, redisDB, redisUsername, redisPassword)
		if err != nil {
			return err
		}
		m.rdbClient = rdbClient
		cache = &redisLib.Store{ResultDB: rdbClient}
	}

	m.server = northbound.NewServer(m.config.HTTPPort, m.scenario, cache)
	return m.server.Serve()
}

// Close kills the channels and manager related objects
func (m *Manager) Close() {
	log.Info("Closing Manager")
	if m.rdbClient != nil {
		if err := m.rdbClient.Close(); err != nil {
			log.Warnf("error closing redis client: %v", err)
		}
	}
}

// Scenario returns the configuration used to seed new sessions.
func (m *Manager) Scenario() model.SimulationConfig {
	return m.scenario
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"bytes"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const configDir = "/etc/ris-simulator/config"

// Load loads a named scenario into the supplied configuration, looking
// in the standard config locations.
func Load(cfg *SimulationConfig, name string) error {
	*cfg = DefaultConfig()

	v := viper.New()
	v.SetConfigName(name)
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// ExportYAML renders the configuration as scenario file content that
// Load and LoadConfigFromBytes accept back unchanged.
func (c SimulationConfig) ExportYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadConfigFromBytes loads a scenario from raw YAML content.
func LoadConfigFromBytes(cfg *SimulationConfig, data []byte) error {
	*cfg = DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

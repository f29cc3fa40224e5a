// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"testing"

	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNewManager(t *testing.T) {
	mgr, err := NewManager(&Config{HTTPPort: 8000})
	assert.NoError(t, err)
	assert.NotNil(t, mgr)

	// Sessions are seeded with the built-in scenario until one is loaded.
	assert.Equal(t, model.DefaultConfig(), mgr.Scenario())

	mgr.Close()
}

// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package northbound

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nfvri/ris-simulator/pkg/model"
	"github.com/nfvri/ris-simulator/pkg/sim"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 65536,
}

// handleSimulation runs one streaming simulation session over a
// websocket connection. Each session gets its own driver instance,
// which is discarded when the connection closes.
func (s *Server) handleSimulation(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.New().String()
	log.Infof("session %s: client connected to simulation stream", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	deltas := make(chan []byte)
	go func() {
		defer close(deltas)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				log.Infof("session %s: client disconnected: %v", sessionID, err)
				cancel()
				return
			}
			select {
			case deltas <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	driver := sim.NewDriver(s.sessionCfg)
	emit := func(frame *model.Frame) error {
		return conn.WriteJSON(frame)
	}

	if err := driver.Run(ctx, deltas, emit); err != nil && err != context.Canceled {
		log.Warnf("session %s: loop terminated: %v", sessionID, err)
	}
	log.Infof("session %s: closed", sessionID)
}

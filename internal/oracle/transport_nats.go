// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

//go:build nats

package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	natsgo "github.com/nats-io/nats.go"
)

// NATSTransport generates task content via a NATS request-reply call on a
// fixed subject. The oracle process subscribes on that subject, unmarshals
// Request, and replies with a marshaled Response.
type NATSTransport struct {
	conn    *natsgo.Conn
	subject string
}

// NewNATSTransport connects to natsURL and returns a Transport that issues
// request-reply calls on subject.
func NewNATSTransport(natsURL, subject string) (*NATSTransport, error) {
	conn, err := natsgo.Connect(natsURL,
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(10),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return &NATSTransport{conn: conn, subject: subject}, nil
}

// Generate implements Transport.
func (t *NATSTransport) Generate(ctx context.Context, req Request) (Response, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("marshal oracle request: %w", err)
	}

	msg, err := t.conn.RequestWithContext(ctx, t.subject, payload)
	if err != nil {
		return Response{}, fmt.Errorf("oracle request: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(msg.Data, &resp); err != nil {
		return Response{}, fmt.Errorf("unmarshal oracle response: %w", err)
	}
	return resp, nil
}

// Close releases the underlying NATS connection.
func (t *NATSTransport) Close() {
	t.conn.Close()
}

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

//go:build !nats

package oracle

import (
	"context"
	"fmt"
)

// NATSTransport is a stub when NATS dependencies are not available. Build
// with -tags=nats to enable the live transport; without it, Client always
// falls back to Template.
type NATSTransport struct{}

// NewNATSTransport returns an error without the nats build tag.
func NewNATSTransport(natsURL, subject string) (*NATSTransport, error) {
	return nil, fmt.Errorf("oracle NATS transport not available: build with -tags=nats")
}

// Generate is a stub that always errors, so Client.Generate falls back to
// Template.
func (t *NATSTransport) Generate(ctx context.Context, req Request) (Response, error) {
	return Response{}, fmt.Errorf("oracle NATS transport not available: build with -tags=nats")
}

// Close is a no-op stub.
func (t *NATSTransport) Close() {}

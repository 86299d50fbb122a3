// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package oracle

import (
	"context"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// Client wraps a Transport with rate limiting, a circuit breaker, and a
// request timeout, falling back to Template on any failure so a caller
// never sees a transport error — only a Result with UsedFallback set,
// which is informational.
type Client struct {
	transport Transport
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[Response]
	cfg       Config
}

// NewClient builds a resilient client around transport.
func NewClient(transport Transport, cfg Config) *Client {
	settings := gobreaker.Settings{
		Name:        cfg.Breaker.Name,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
		},
	}

	return &Client{
		transport: transport,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimitRefillPerSec), cfg.RateLimitCapacity),
		breaker:   gobreaker.NewCircuitBreaker[Response](settings),
		cfg:       cfg,
	}
}

// Result carries the oracle's answer plus whether the template fallback
// was used in place of a live response.
type Result struct {
	Response     Response
	UsedFallback bool
}

// Generate requests task content for req, falling back to a template
// keyed on (req.Type, req.Format, stage) if the rate limiter cannot admit
// the call before ctx is done, the circuit is open, the transport errors,
// or the request times out.
func (c *Client) Generate(ctx context.Context, req Request, s domain.Stage) Result {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{Response: Template(req, s), UsedFallback: true}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	resp, err := c.breaker.Execute(func() (Response, error) {
		return c.transport.Generate(reqCtx, req)
	})
	if err != nil {
		return Result{Response: Template(req, s), UsedFallback: true}
	}
	return Result{Response: resp}
}

// State reports the circuit breaker's current state, for health reporting.
func (c *Client) State() string {
	return c.breaker.State().String()
}

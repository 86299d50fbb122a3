// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package oracle is the content-oracle client contract: the core emits a
// task-spec and expects back a prompt, answer, and hints, but the actual
// generator lives outside this module. Generate wraps the transport with a
// token-bucket rate limit, a circuit breaker, and a request timeout, and
// falls back to a deterministic template when the oracle is unavailable —
// core scoring must never block on or fail because of that provider.
package oracle

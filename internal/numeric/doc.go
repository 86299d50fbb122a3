// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package numeric provides the L0 numeric kernels shared by the IRT and
// FSRS engines: the logistic function, Gauss-Hermite quadrature, a
// Newton-Raphson root finder, and Shannon entropy.
//
// These kernels are intentionally built on the standard library only — no
// library in the example pack offers Gauss-Hermite quadrature or a
// generic Newton-Raphson solver, so reimplementing them here is the
// pragmatic choice (see DESIGN.md).
package numeric

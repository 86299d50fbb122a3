// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package irt implements the Item Response Theory engine: 1PL/2PL/3PL
// probability models, MLE and EAP ability estimation, Fisher-information
// and KL-divergence item selection, and 2PL EM calibration.
package irt

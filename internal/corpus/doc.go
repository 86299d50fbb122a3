// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package corpus turns raw co-occurrence and frequency counts (produced
// by out-of-core corpus ingestion) into the PMI/NPMI collocation
// statistics and frequency-ranked difficulty scores the priority and IRT
// engines consume. Ingestion itself is out of scope; this package only
// computes over counts it is handed.
package corpus

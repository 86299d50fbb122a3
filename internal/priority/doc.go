// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package priority computes the FRE (frequency/relational/engagement)
// priority score for a LanguageObject and builds the ordered practice
// queue for a session: due items first, topped up with the
// highest-priority new items, variety-capped, truncated to session size.
package priority

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package zvector scores task-type suitability from a LanguageObject's
// z(w) feature vector, selects a modality from its dominant component,
// and enforces the same-type variety cap when building a task batch.
package zvector

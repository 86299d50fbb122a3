// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import "github.com/google/uuid"

// generateID returns a new random identifier for a Session, Response, or
// StageTransition record.
func generateID() string {
	return uuid.New().String()
}

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package api

import "github.com/kerem-isiktasli/logos/internal/zvector"

func zvectorTaskType(s string) zvector.TaskType {
	return zvector.TaskType(s)
}

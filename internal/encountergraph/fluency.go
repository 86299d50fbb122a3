// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import "github.com/kerem-isiktasli/logos/internal/numeric"

// RetrievalFluency maps an average response time to a [0,1] fluency score
// via a sigmoid centered at retrievalFluencyCenterMs: faster average
// responses push fluency toward 1, slower ones toward 0.
func RetrievalFluency(avgResponseTimeMs float64) float64 {
	return numeric.Sigmoid((retrievalFluencyCenterMs - avgResponseTimeMs) / retrievalFluencyScaleMs)
}

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package encountergraph

import (
	"github.com/kerem-isiktasli/logos/internal/domain"
	"github.com/kerem-isiktasli/logos/internal/numeric"
)

// ModalityBalance returns the normalized Shannon entropy of counts across
// the four modalities: 1 when every modality encountered so far has an
// equal share, 0 when only one modality has ever been used.
func ModalityBalance(counts map[domain.Modality]int) float64 {
	bins := make([]float64, len(canonicalModalities))
	for i, m := range canonicalModalities {
		bins[i] = float64(counts[m])
	}
	return numeric.NormalizedEntropy(bins)
}

// CategoryBalance is the same normalized-entropy treatment applied to the
// interpretation/production split.
func CategoryBalance(counts map[domain.InteractionCategory]int) float64 {
	bins := make([]float64, len(canonicalCategories))
	for i, c := range canonicalCategories {
		bins[i] = float64(counts[c])
	}
	return numeric.NormalizedEntropy(bins)
}

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package linguistic holds the rule-based L0 analyzers that turn a raw
// LanguageObject token or passage into the raw signals the rest of the
// engine consumes: morphological segmentation, grapheme-to-phoneme
// irregularity, syntactic complexity, pragmatic register, and a
// relational semantic network. SeedZVector folds all five into the
// normalized z(w) vector internal/zvector and internal/priority work
// from. None of these analyzers touch corpus frequency statistics
// (internal/corpus owns F) or IRT calibration (internal/irt owns a/b/c);
// they only supply D, M, P, PRAG, SYNT and the relational density behind
// R.
package linguistic

// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package irt

import (
	"math"

	"github.com/kerem-isiktasli/logos/internal/domain"
)

// HessianRegularization is added to the Newton-step denominator during
// M-step parameter updates, keeping the step bounded when an item's
// responses are nearly deterministic and its observed Hessian is close
// to singular.
const HessianRegularization = -0.01

// PersonResponse is one person's observed correctness on one item, the
// unit of calibration data.
type PersonResponse struct {
	PersonID string
	ItemID   string
	Correct  bool
}

// CalibrationConfig holds EM loop tunables.
type CalibrationConfig struct {
	MaxIterations int
	Tolerance     float64
	Estimator     EstimatorConfig
}

// DefaultCalibrationConfig returns 25 EM iterations, a 1e-4 parameter
// tolerance, and end-of-session (41-node) EAP for the E-step.
func DefaultCalibrationConfig() CalibrationConfig {
	return CalibrationConfig{
		MaxIterations: 25,
		Tolerance:     1e-4,
		Estimator:     EndOfSessionEstimatorConfig(),
	}
}

// CalibratedItem is an item's recalibrated 2PL parameters plus the
// standard errors from observed information at convergence.
type CalibratedItem struct {
	ItemID string
	Params domain.IRTParams
	SEa    float64
	SEb    float64
}

// Calibrate2PL runs the EM algorithm for the 2PL model over a set of
// person-item responses. initial supplies a starting a,b per item ID
// (items absent from initial default to DefaultIRTParams()). The
// E-step estimates each person's theta via EAP; the M-step updates each
// item's (a,b) via a regularized Newton step, clipping to the domain
// IRTParams invariant ranges, and iterates until every item's parameter
// change is below cfg.Tolerance or cfg.MaxIterations is reached.
func Calibrate2PL(responses []PersonResponse, initial map[string]domain.IRTParams, cfg CalibrationConfig) []CalibratedItem {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 25
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = 1e-4
	}

	byPerson := make(map[string][]PersonResponse)
	byItem := make(map[string][]PersonResponse)
	itemIDs := make([]string, 0)
	seenItem := make(map[string]bool)
	for _, r := range responses {
		byPerson[r.PersonID] = append(byPerson[r.PersonID], r)
		byItem[r.ItemID] = append(byItem[r.ItemID], r)
		if !seenItem[r.ItemID] {
			seenItem[r.ItemID] = true
			itemIDs = append(itemIDs, r.ItemID)
		}
	}

	params := make(map[string]domain.IRTParams, len(itemIDs))
	for _, id := range itemIDs {
		if p, ok := initial[id]; ok {
			params[id] = p
		} else {
			params[id] = domain.DefaultIRTParams()
		}
	}

	itemSE := make(map[string][2]float64, len(itemIDs))

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		// E-step: estimate each person's theta via EAP using current item params.
		thetas := make(map[string]float64, len(byPerson))
		for person, resps := range byPerson {
			obs := make([]Observation, len(resps))
			for i, r := range resps {
				obs[i] = Observation{Item: params[r.ItemID], Correct: r.Correct}
			}
			res := EAP(obs, cfg.Estimator)
			thetas[person] = res.Theta
		}

		// M-step: per item, Newton step on (a,b) using current thetas.
		maxDelta := 0.0
		for _, itemID := range itemIDs {
			cur := params[itemID]
			newA, newB, seA, seB := itemMStep(cur, byItem[itemID], thetas)
			newParams := domain.IRTParams{A: clip(newA, 0.2, 3.0), B: clip(newB, -4.0, 4.0), C: cur.C}

			delta := math.Abs(newParams.A-cur.A) + math.Abs(newParams.B-cur.B)
			if delta > maxDelta {
				maxDelta = delta
			}
			params[itemID] = newParams
			itemSE[itemID] = [2]float64{seA, seB}
		}

		if maxDelta < cfg.Tolerance {
			break
		}
	}

	out := make([]CalibratedItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		se := itemSE[id]
		out = append(out, CalibratedItem{ItemID: id, Params: params[id], SEa: se[0], SEb: se[1]})
	}
	return out
}

// itemMStep runs one regularized Newton step on an item's (a,b) using the
// current person theta estimates, with gradient/Hessian taken with respect
// to (a,b) rather than theta. The 2x2 Hessian is diagonal under the
// standard 2PL parameterization decomposition used here: each parameter is
// updated independently with its own regularized second derivative, which
// keeps the step a pair of scalar Newton updates rather than a full matrix
// solve.
func itemMStep(cur domain.IRTParams, resps []PersonResponse, thetas map[string]float64) (newA, newB, seA, seB float64) {
	if len(resps) == 0 {
		return cur.A, cur.B, math.Inf(1), math.Inf(1)
	}

	var gradA, hessA, gradB, hessB float64
	for _, r := range resps {
		theta := thetas[r.PersonID]
		p := Prob2PL(theta, cur.A, cur.B)
		q := 1 - p
		u := 0.0
		if r.Correct {
			u = 1.0
		}

		// d/da log L = (theta-b)*(u-p); d2/da2 log L = -(theta-b)^2*p*q
		diff := theta - cur.B
		gradA += diff * (u - p)
		hessA -= diff * diff * p * q

		// d/db log L = -a*(u-p); d2/db2 log L = -a^2*p*q
		gradB += -cur.A * (u - p)
		hessB -= cur.A * cur.A * p * q
	}

	hessA += HessianRegularization
	hessB += HessianRegularization

	newA = cur.A
	newB = cur.B
	if hessA < -1e-9 {
		newA = cur.A - gradA/hessA
		seA = 1 / math.Sqrt(-hessA)
	} else {
		seA = math.Inf(1)
	}
	if hessB < -1e-9 {
		newB = cur.B - gradB/hessB
		seB = 1 / math.Sqrt(-hessB)
	} else {
		seB = math.Inf(1)
	}
	return newA, newB, seA, seB
}

func clip(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

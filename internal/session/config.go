// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package session

import (
	"time"

	"github.com/kerem-isiktasli/logos/internal/bottleneck"
	"github.com/kerem-isiktasli/logos/internal/fsrs"
	"github.com/kerem-isiktasli/logos/internal/irt"
	"github.com/kerem-isiktasli/logos/internal/priority"
	"github.com/kerem-isiktasli/logos/internal/timing"
	"github.com/kerem-isiktasli/logos/internal/zvector"
)

// Config bundles every tunable a SessionActor needs, defaulting every
// sub-config to its own package's documented default.
type Config struct {
	// CommandBufferSize bounds the actor's inbound command channel.
	CommandBufferSize int

	// SessionSize is the default number of items placed in a session
	// queue when StartSession does not override it.
	SessionSize int

	// VarietyCap is the default same-task-type run cap.
	VarietyCap int

	// OracleTimeout bounds how long a task-spec step waits on the
	// content oracle before proceeding without enrichment.
	OracleTimeout time.Duration

	// TaskCacheSize and TaskCacheTTL configure the (object_id,
	// task_type, task_format)-keyed oracle response cache.
	TaskCacheSize int
	TaskCacheTTL  time.Duration

	// BottleneckWindow is the rolling outcome window size per component.
	BottleneckWindow int

	Priority   priority.Config
	Bottleneck bottleneck.Config
	FSRS       fsrs.SchedulerConfig
	Timing     timing.Config
	Affinity   zvector.AffinityMatrix
	Estimator  irt.EstimatorConfig
}

// DefaultConfig wires every sub-package's documented default together.
func DefaultConfig() Config {
	return Config{
		CommandBufferSize: 32,
		SessionSize:       20,
		VarietyCap:        zvector.DefaultMaxPerType,
		OracleTimeout:     30 * time.Second,
		TaskCacheSize:     DefaultTaskCacheSize,
		TaskCacheTTL:      DefaultTaskCacheTTL,
		BottleneckWindow:  50,

		Priority:   priority.DefaultConfig(),
		Bottleneck: bottleneck.DefaultConfig(),
		FSRS:       fsrs.DefaultSchedulerConfig(),
		Timing:     timing.DefaultConfig(),
		Affinity:   zvector.DefaultAffinityMatrix(),
		Estimator:  irt.DefaultEstimatorConfig(),
	}
}

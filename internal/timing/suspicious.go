// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

package timing

// Pattern is a flagged suspicious response-time pattern.
type Pattern string

const (
	PatternRoboticTiming  Pattern = "robotic_timing"
	PatternBotPattern     Pattern = "bot_pattern"
	PatternRandomClicking Pattern = "random_clicking"
)

// MinSuspiciousSample is the minimum response count before any pattern
// check runs.
const MinSuspiciousSample = 5

// roboticTimingBucketMs is the bucket width used to detect uniform
// response times.
const roboticTimingBucketMs = 100

// Sample is one response's timing/correctness pair for pattern analysis.
type Sample struct {
	ResponseTimeMs int64
	Correct        bool
}

// DetectSuspicious flags any of robotic_timing, bot_pattern, or
// random_clicking present across samples. Fewer than MinSuspiciousSample
// samples never triggers a flag.
func DetectSuspicious(samples []Sample) []Pattern {
	if len(samples) < MinSuspiciousSample {
		return nil
	}

	var flags []Pattern
	if isRoboticTiming(samples) {
		flags = append(flags, PatternRoboticTiming)
	}
	if isBotPattern(samples) {
		flags = append(flags, PatternBotPattern)
	}
	if isRandomClicking(samples) {
		flags = append(flags, PatternRandomClicking)
	}
	return flags
}

// isRoboticTiming reports whether every sample falls in the same
// 100ms-wide response-time bucket.
func isRoboticTiming(samples []Sample) bool {
	bucket := samples[0].ResponseTimeMs / roboticTimingBucketMs
	for _, s := range samples[1:] {
		if s.ResponseTimeMs/roboticTimingBucketMs != bucket {
			return false
		}
	}
	return true
}

// isBotPattern reports whether every response is under 500ms and more
// than 90% are correct.
func isBotPattern(samples []Sample) bool {
	correct := 0
	for _, s := range samples {
		if s.ResponseTimeMs >= 500 {
			return false
		}
		if s.Correct {
			correct++
		}
	}
	return float64(correct)/float64(len(samples)) > 0.9
}

// isRandomClicking reports whether every response is under 300ms and
// fewer than 30% are correct.
func isRandomClicking(samples []Sample) bool {
	correct := 0
	for _, s := range samples {
		if s.ResponseTimeMs >= 300 {
			return false
		}
		if s.Correct {
			correct++
		}
	}
	return float64(correct)/float64(len(samples)) < 0.3
}

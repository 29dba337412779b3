// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package classical provides the linear-scan baseline the amplitude
// amplification search is compared against.
package classical

import "time"

// Search scans keys in order and returns the index of the first exact match,
// or -1 when the target is absent.
func Search(keys []string, target string) int {
	for i, key := range keys {
		if key == target {
			return i
		}
	}
	return -1
}

// Baseline is a timed linear scan outcome.
type Baseline struct {
	Index   int
	Found   bool
	Elapsed time.Duration
}

// Measure runs Search under a timer for side-by-side comparison with the
// simulated search.
func Measure(keys []string, target string) Baseline {
	start := time.Now()
	idx := Search(keys, target)
	return Baseline{
		Index:   idx,
		Found:   idx >= 0,
		Elapsed: time.Since(start),
	}
}

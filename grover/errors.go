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


package grover

import "errors"

// All failures are detected before any simulation work begins; no partial
// amplitude state is ever exposed on error.
var (
	// ErrEmptyDatabase indicates the key list to search is empty.
	ErrEmptyDatabase = errors.New("database is empty")

	// ErrInvalidTarget indicates the search target is empty or blank.
	ErrInvalidTarget = errors.New("search target cannot be empty")

	// ErrTargetNotFound indicates the target matched no key, exactly or by
	// substring containment.
	ErrTargetNotFound = errors.New("target not in database")

	// ErrShotsOutOfRange indicates the requested shot count is not positive
	// or exceeds MaxShots.
	ErrShotsOutOfRange = errors.New("shots out of range")

	// ErrQubitCeilingExceeded indicates the padded index space would need
	// more qubits than the configured ceiling allows. The exact simulation
	// costs O(2^n) memory, so the ceiling fails fast instead of allocating.
	ErrQubitCeilingExceeded = errors.New("qubit ceiling exceeded")
)

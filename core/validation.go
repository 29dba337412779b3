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


package core

import (
	"fmt"
	"time"
)

// ValidateRecord validates a Record according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - URL must not be empty
//   - Source must be a known engine
//   - FetchedAt must not be in the future
//
// NOT validated (populated by the repository):
//   - ID (0 is valid; the repository assigns the content ID on insert)
//   - InsertedAt
//   - Summary (engines frequently return results without one)
func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyTitle)
	}

	if record.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyURL)
	}

	if err := ValidateSource(record.Source); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	if !IsValidFetchTime(record.FetchedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidFetchTime)
	}

	return nil
}

// ValidateSource validates that a Source has a valid value.
func ValidateSource(source Source) error {
	if source < SourceBing || source > SourceSogou {
		return fmt.Errorf("%w: value %d", ErrInvalidSource, source)
	}
	return nil
}

// IsValidFetchTime checks if a fetch timestamp is valid (not in the future).
func IsValidFetchTime(ts time.Time) bool {
	return !ts.After(time.Now())
}

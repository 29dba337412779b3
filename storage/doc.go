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


// Package storage provides the storage abstraction layer for qsearch.
//
// This package defines the repository interface that decouples the record
// store implementation from the crawler and search layers, so different
// backends (BadgerDB, in-memory) can be used interchangeably.
//
// Records are keyed by their content ID (hash of title and URL), which makes
// inserts idempotent: re-crawling the same result is a no-op. Insertion order
// is preserved through a secondary index, because the order of the record
// list is what the amplitude-amplification search indexes over.
package storage

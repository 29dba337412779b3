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


// Package grover locates a target entry in an unordered key list by
// simulating Grover-style amplitude amplification instead of scanning
// linearly.
//
// The simulation works directly on a real amplitude vector of size N = 2^n,
// where n is the number of bits needed to index the (power-of-two padded)
// key list:
//   - the oracle sign-flips the amplitude of the target index,
//   - the diffusion operator reflects every amplitude about the mean,
//   - the two are applied for a scheduled number of rounds (~ pi/4 * sqrt(N)),
//   - the final distribution is sampled like repeated measurements, and the
//     majority outcome is decoded back to an item.
//
// There is no gate-level circuit machinery here: both operators are expressed
// as their closed-form effect on the amplitude vector, which is mathematically
// equivalent and keeps the package dependency-free.
//
// Every call builds and discards its own state, so concurrent searches over
// different inputs are independent and safe.
package grover

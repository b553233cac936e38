// Copyright 2026 Google LLC. All Rights Reserved.
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

package flatmerkle

// Hasher provides the hash functions needed to build and update a tree.
//
// Implementations must be deterministic and should apply domain separation
// between leaf hashes and interior-node hashes so that a combined value can
// never collide with a leaf value under the same scheme.
type Hasher interface {
	// HashLeaf computes the hash of raw leaf content.
	HashLeaf(leaf []byte) []byte
	// HashChildren computes the hash of an interior node from the hashes of
	// its left and right children.
	HashChildren(l, r []byte) []byte
	// EmptyHash returns the hash value stored in unoccupied node slots.
	// It must return the same value on every call.
	EmptyHash() []byte
	// Size is the number of bytes in hashes produced by the other methods.
	Size() int
}

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

// Package flatmerkle implements a binary Merkle tree stored as a flat,
// 1-indexed array of hash values.
//
// The backing array has length 2·L for L leaf slots, L a power of two.
// Index 0 is an unused filler slot, index 1 holds the root, and indices
// L..2L-1 hold the leaves in left-to-right order. The 1-indexing keeps the
// node arithmetic free of off-by-one adjustments: the parent of node i is
// i/2, its sibling is i^1, and left children occupy the even index of each
// sibling pair.
//
// The tree supports single-leaf updates and batched updates; the batched
// form recomputes a parent shared by two updated siblings only once.
package flatmerkle

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrUnorderedUpdates is returned by SetLeaves when the supplied leaf
// indices are not strictly increasing. The tree is left unchanged.
var ErrUnorderedUpdates = errors.New("flatmerkle: leaf indices not strictly increasing")

// Tree is a binary Merkle tree backed by a flat 1-indexed array.
//
// A Tree is not safe for concurrent use; callers must serialize access.
type Tree struct {
	hasher Hasher
	// nodes[0] is unused, nodes[1] is the root, and the second half of the
	// slice is the leaf row.
	nodes [][]byte
}

func isPowerOfTwo(x int64) bool {
	return x != 0 && x&(x-1) == 0
}

func nextPowerOfTwo(x int64) int64 {
	n := int64(1)
	for n < x {
		n <<= 1
	}
	return n
}

func parent(index int64) int64 {
	return index >> 1
}

func sibling(index int64) int64 {
	return index ^ 1
}

// childPair returns the indices of the sibling pair containing index, left
// child first. The left member of a pair is always the even, smaller index.
func childPair(index int64) (int64, int64) {
	if index&1 == 0 {
		return index, index | 1
	}
	return index &^ 1, index
}

// NewEmpty returns a tree with the given number of leaf slots, every slot
// holding the hasher's empty hash. numLeaves must be a power of two; this is
// a programming contract, and NewEmpty panics when it is violated. Trees
// built from a leaf set should use New, which sizes the leaf row itself.
func NewEmpty(hasher Hasher, numLeaves int64) *Tree {
	if numLeaves < 1 || !isPowerOfTwo(numLeaves) {
		panic(fmt.Sprintf("flatmerkle: NewEmpty(%d): leaf slot count must be a power of two", numLeaves))
	}
	nodes := make([][]byte, 2*numLeaves)
	empty := hasher.EmptyHash()
	for i := range nodes {
		nodes[i] = empty
	}
	return &Tree{hasher: hasher, nodes: nodes}
}

// New builds a tree from the given leaf hashes. The leaf row is sized to the
// next power of two and the supplied leaves fill its tail, so with a
// non-power-of-two count the leading slots keep the empty hash. The root and
// all interior hashes are computed before New returns; the tree's contract
// is only guaranteed for power-of-two leaf counts.
func New(hasher Hasher, leaves [][]byte) *Tree {
	t := NewEmpty(hasher, nextPowerOfTwo(int64(len(leaves))))
	t.build(leaves)
	return t
}

func (t *Tree) build(leaves [][]byte) {
	off := len(t.nodes) - len(leaves)
	for i, leaf := range leaves {
		t.nodes[off+i] = bytes.Clone(leaf)
	}
	// Combine the leaf row pairwise, level by level, until the root. A
	// single-leaf tree never enters the loop: its leaf occupies the root
	// slot directly.
	for lo := t.NumLeaves(); lo > 1; lo >>= 1 {
		for i := lo; i < 2*lo; i += 2 {
			t.nodes[i>>1] = t.hasher.HashChildren(t.nodes[i], t.nodes[i+1])
		}
		countCombines(opBuild, lo>>1)
	}
}

// Root returns the current root hash. The returned slice is owned by the
// tree and must not be modified.
func (t *Tree) Root() []byte {
	return t.nodes[1]
}

// NumLeaves returns the number of leaf slots in the tree.
func (t *Tree) NumLeaves() int64 {
	return int64(len(t.nodes) / 2)
}

// SetLeaf overwrites the leaf at the given 0-based index with hash and
// recomputes the hashes of all the leaf's ancestors. Setting a leaf to the
// value it already holds is a no-op and invokes the hasher zero times.
func (t *Tree) SetLeaf(leafIndex int64, hash []byte) error {
	numLeaves := t.NumLeaves()
	if leafIndex < 0 || leafIndex >= numLeaves {
		return fmt.Errorf("flatmerkle: leaf index %d out of range [0, %d)", leafIndex, numLeaves)
	}
	index := leafIndex + numLeaves
	if bytes.Equal(t.nodes[index], hash) {
		countLeafUpdate(statusNoop)
		return nil
	}
	t.nodes[index] = bytes.Clone(hash)
	var combines int64
	for index > 1 {
		left, right := childPair(index)
		index = parent(index)
		t.nodes[index] = t.hasher.HashChildren(t.nodes[left], t.nodes[right])
		combines++
	}
	countCombines(opUpdate, combines)
	countLeafUpdate(statusApplied)
	return nil
}

// SetLeaves overwrites the leaves at the given 0-based indices with the
// corresponding hashes and recomputes all affected ancestor hashes. When two
// updated nodes are siblings their shared parent is combined once, not
// twice. leafIndices must be strictly increasing; otherwise
// ErrUnorderedUpdates is returned. All validation happens before any slot is
// written, so a rejected batch leaves the tree bit-for-bit unchanged.
func (t *Tree) SetLeaves(leafIndices []int64, hashes [][]byte) error {
	if len(leafIndices) != len(hashes) {
		return fmt.Errorf("flatmerkle: got %d leaf indices for %d hashes", len(leafIndices), len(hashes))
	}
	numLeaves := t.NumLeaves()
	for i, leafIndex := range leafIndices {
		if leafIndex < 0 || leafIndex >= numLeaves {
			return fmt.Errorf("flatmerkle: leaf index %d out of range [0, %d)", leafIndex, numLeaves)
		}
		if i > 0 && leafIndices[i-1] >= leafIndex {
			countBatch(statusRejected)
			return ErrUnorderedUpdates
		}
	}

	// Write all leaves, then propagate upwards through a FIFO queue seeded
	// with the updated leaf slots. Ascending input order plus FIFO order
	// means a level is fully processed before any node of the level above,
	// so no parent is ever combined from a stale child.
	queue := make([]int64, 0, len(leafIndices)+1)
	for i, leafIndex := range leafIndices {
		index := leafIndex + numLeaves
		t.nodes[index] = bytes.Clone(hashes[i])
		queue = append(queue, index)
	}
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]
		if index == 1 {
			// Root reached: its hash was written by the combine that
			// enqueued it.
			break
		}
		// If the next queued node is our sibling, drop it; the combine
		// below covers the pair.
		if len(queue) > 0 && queue[0] == sibling(index) {
			queue = queue[1:]
		}
		left, right := childPair(index)
		p := parent(index)
		t.nodes[p] = t.hasher.HashChildren(t.nodes[left], t.nodes[right])
		countCombines(opBatch, 1)
		queue = append(queue, p)
	}
	countBatch(statusApplied)
	return nil
}

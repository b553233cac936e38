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

import (
	"errors"
	"testing"

	"github.com/google/flatmerkle/monitoring"
)

func TestMetrics(t *testing.T) {
	InitMetrics(monitoring.InertMetricFactory{})
	hasher := testHasher{}
	tree := New(hasher, leafHashes(hasher, 4))

	applied := leafUpdates.Value(statusApplied)
	noops := leafUpdates.Value(statusNoop)
	combines := combinerInvocations.Value(opUpdate)

	v := hasher.HashLeaf([]byte("metric"))
	if err := tree.SetLeaf(0, v); err != nil {
		t.Fatalf("SetLeaf: %v", err)
	}
	if err := tree.SetLeaf(0, v); err != nil {
		t.Fatalf("SetLeaf (repeat): %v", err)
	}

	if got := leafUpdates.Value(statusApplied) - applied; got != 1 {
		t.Errorf("applied count delta=%v, want 1", got)
	}
	if got := leafUpdates.Value(statusNoop) - noops; got != 1 {
		t.Errorf("noop count delta=%v, want 1", got)
	}
	// A 4-leaf tree is 2 levels deep above the leaf row.
	if got := combinerInvocations.Value(opUpdate) - combines; got != 2 {
		t.Errorf("update combine delta=%v, want 2", got)
	}

	rejected := batchUpdates.Value(statusRejected)
	err := tree.SetLeaves([]int64{1, 1}, [][]byte{v, v})
	if !errors.Is(err, ErrUnorderedUpdates) {
		t.Fatalf("SetLeaves with duplicate indices: err=%v, want ErrUnorderedUpdates", err)
	}
	if got := batchUpdates.Value(statusRejected) - rejected; got != 1 {
		t.Errorf("rejected count delta=%v, want 1", got)
	}
}

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
	"sync"

	"github.com/google/flatmerkle/monitoring"
)

// Label values for the op label of the combiner-invocations counter.
const (
	opBuild  = "build"
	opUpdate = "update"
	opBatch  = "batch"
)

// Label values for the status label of the update counters.
const (
	statusApplied  = "applied"
	statusNoop     = "noop"
	statusRejected = "rejected"
)

var (
	metricsOnce sync.Once

	combinerInvocations monitoring.Counter
	leafUpdates         monitoring.Counter
	batchUpdates        monitoring.Counter
)

// InitMetrics initializes the package's metrics using the given factory.
// Only the first call has any effect; if InitMetrics is never called the
// package records no metrics.
func InitMetrics(mf monitoring.MetricFactory) {
	metricsOnce.Do(func() {
		combinerInvocations = mf.NewCounter(
			"flatmerkle_combiner_invocations",
			"Number of HashChildren invocations, by operation",
			"op")
		leafUpdates = mf.NewCounter(
			"flatmerkle_leaf_updates",
			"Number of SetLeaf calls, by outcome",
			"status")
		batchUpdates = mf.NewCounter(
			"flatmerkle_batch_updates",
			"Number of SetLeaves calls, by outcome",
			"status")
	})
}

func countCombines(op string, n int64) {
	if combinerInvocations == nil {
		return
	}
	combinerInvocations.Add(float64(n), op)
}

func countLeafUpdate(status string) {
	if leafUpdates == nil {
		return
	}
	leafUpdates.Inc(status)
}

func countBatch(status string) {
	if batchUpdates == nil {
		return
	}
	batchUpdates.Inc(status)
}

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

// The flatmerkle_demo binary builds a tree from the given leaves, applies a
// few updates and prints the resulting roots.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/flatmerkle"
	"github.com/google/flatmerkle/hashers"
	"github.com/google/flatmerkle/monitoring/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
)

var (
	hashType     = flag.String("hash_type", "RFC6962-SHA256", "Registered hasher to build the tree with")
	leaves       = flag.String("leaves", "alpha,bravo,charlie,delta", "Comma-separated raw leaf contents")
	httpEndpoint = flag.String("http_endpoint", "", "Endpoint for HTTP metrics (host:port, empty means disabled)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *httpEndpoint != "" {
		flatmerkle.InitMetrics(prometheus.MetricFactory{})
	}

	hasher, err := hashers.Get(*hashType)
	if err != nil {
		klog.Exitf("Failed to look up --hash_type: %v", err)
	}

	var leafHashes [][]byte
	for _, leaf := range strings.Split(*leaves, ",") {
		leafHashes = append(leafHashes, hasher.HashLeaf([]byte(leaf)))
	}
	tree := flatmerkle.New(hasher, leafHashes)
	klog.Infof("Built %s tree with %d leaf slots", *hashType, tree.NumLeaves())
	fmt.Printf("root: %x\n", tree.Root())

	if err := tree.SetLeaf(0, hasher.HashLeaf([]byte("echo"))); err != nil {
		klog.Exitf("SetLeaf: %v", err)
	}
	fmt.Printf("root after single update: %x\n", tree.Root())

	if tree.NumLeaves() >= 2 {
		batch := [][]byte{hasher.HashLeaf([]byte("foxtrot")), hasher.HashLeaf([]byte("golf"))}
		if err := tree.SetLeaves([]int64{0, 1}, batch); err != nil {
			klog.Exitf("SetLeaves: %v", err)
		}
		fmt.Printf("root after batched update: %x\n", tree.Root())
	}

	if *httpEndpoint != "" {
		klog.Infof("Serving metrics at %s/metrics", *httpEndpoint)
		http.Handle("/metrics", promhttp.Handler())
		klog.Exit(http.ListenAndServe(*httpEndpoint, nil))
	}
}

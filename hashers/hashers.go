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

// Package hashers provides named flatmerkle.Hasher implementations.
package hashers

import (
	"fmt"

	"github.com/google/flatmerkle"
)

var hashers = make(map[string]flatmerkle.Hasher)

// Register makes a hasher available under the given name. It panics if the
// name is already registered.
func Register(name string, h flatmerkle.Hasher) {
	if _, ok := hashers[name]; ok {
		panic(fmt.Sprintf("hashers: %q already registered", name))
	}
	hashers[name] = h
}

// Get returns the hasher registered under the given name.
func Get(name string) (flatmerkle.Hasher, error) {
	h, ok := hashers[name]
	if !ok {
		return nil, fmt.Errorf("hashers: hash type %q not found", name)
	}
	return h, nil
}

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

package hashers

import (
	"github.com/transparency-dev/merkle/rfc6962"
)

func init() {
	Register("RFC6962-SHA256", RFC6962{})
}

// RFC6962 hashes leaves and interior nodes with SHA-256 using the RFC 6962
// domain separation prefixes (0x00 for leaves, 0x01 for interior nodes).
// Empty slots hold the hash of the empty string.
type RFC6962 struct{}

// HashLeaf returns the RFC 6962 leaf hash of the given content.
func (RFC6962) HashLeaf(leaf []byte) []byte {
	return rfc6962.DefaultHasher.HashLeaf(leaf)
}

// HashChildren returns the RFC 6962 interior node hash of l and r.
func (RFC6962) HashChildren(l, r []byte) []byte {
	return rfc6962.DefaultHasher.HashChildren(l, r)
}

// EmptyHash returns the filler hash for unoccupied slots.
func (RFC6962) EmptyHash() []byte {
	return rfc6962.DefaultHasher.EmptyRoot()
}

// Size returns the number of bytes in SHA-256 hashes.
func (RFC6962) Size() int {
	return rfc6962.DefaultHasher.Size()
}

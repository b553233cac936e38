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
	"golang.org/x/crypto/blake2b"
)

// Domain separation prefixes, as in RFC 6962.
const (
	blake2bLeafHashPrefix = 0
	blake2bNodeHashPrefix = 1
)

func init() {
	Register("BLAKE2B-256", Blake2B{})
}

// Blake2B hashes leaves and interior nodes with BLAKE2b-256 using RFC 6962
// style domain separation prefixes.
type Blake2B struct{}

// HashLeaf returns the BLAKE2b-256 hash of 0x00 followed by the content.
func (Blake2B) HashLeaf(leaf []byte) []byte {
	msg := make([]byte, 0, len(leaf)+1)
	msg = append(msg, blake2bLeafHashPrefix)
	msg = append(msg, leaf...)
	digest := blake2b.Sum256(msg)
	return digest[:]
}

// HashChildren returns the BLAKE2b-256 hash of 0x01 followed by l and r.
func (Blake2B) HashChildren(l, r []byte) []byte {
	msg := make([]byte, 0, len(l)+len(r)+1)
	msg = append(msg, blake2bNodeHashPrefix)
	msg = append(msg, l...)
	msg = append(msg, r...)
	digest := blake2b.Sum256(msg)
	return digest[:]
}

// EmptyHash returns the BLAKE2b-256 hash of the empty string.
func (Blake2B) EmptyHash() []byte {
	digest := blake2b.Sum256(nil)
	return digest[:]
}

// Size returns the number of bytes in BLAKE2b-256 hashes.
func (Blake2B) Size() int {
	return blake2b.Size256
}

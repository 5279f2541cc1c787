// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sourcemap

import (
	"bytes"
	"errors"

	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

var base64 = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")

// appendVLQ appends the base 64 variable length quantity encoding of value.
//
// Each digit holds five bits of the value; the sixth bit marks that more
// digits follow. The lowest bit of the first digit is the sign.
//
//	Continuation
//	|    Sign
//	|    |
//	V    V
//	101011
func appendVLQ[T constraints.Signed](buf []byte, value T) []byte {
	vlq := uint64(value) << 1
	if value < 0 {
		vlq = uint64(-value)<<1 | 1
	}

	for {
		digit := vlq & 31
		vlq >>= 5
		if vlq != 0 {
			digit |= 32
		}
		buf = append(buf, base64[digit])
		if vlq == 0 {
			return buf
		}
	}
}

var errVLQ = errors.New("sourcemap: invalid VLQ digit")

// decodeVLQ decodes a single value starting at encoded[start], and returns
// it along with the index just past it.
func decodeVLQ(encoded []byte, start int) (value, next int, err error) {
	var (
		vlq   int
		shift uint
	)
	for {
		if start >= len(encoded) {
			return 0, start, errVLQ
		}
		digit := bytes.IndexByte(base64, encoded[start])
		if digit < 0 {
			return 0, start, errVLQ
		}
		start++
		vlq |= (digit & 31) << shift
		shift += 5
		if digit&32 == 0 {
			break
		}
	}

	value = vlq >> 1
	if vlq&1 != 0 {
		value = -value
	}
	return value, start, nil
}

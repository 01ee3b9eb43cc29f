/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"

	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest canonical gRPC status code.
const maxGRPCCode = int(codes.Unauthenticated)

// freezeHTTP makes an immutable copy of an HTTP map so later mutations of
// the builder cannot affect the mapper.
func freezeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// validateHTTP rejects values that net/http would refuse to write.
func validateHTTP(what string, m map[code.Code]int) error {
	for c, v := range m {
		if v < 100 || v > 599 {
			return fmt.Errorf("mapper: invalid HTTP status %d in %s for code %s", v, what, c)
		}
	}
	return nil
}

// validateGRPC rejects values outside the canonical gRPC code range.
func validateGRPC(what string, m map[code.Code]int) error {
	for c, v := range m {
		if v < 0 || v > maxGRPCCode {
			return fmt.Errorf("mapper: invalid gRPC code %d in %s for code %s", v, what, c)
		}
	}
	return nil
}

// buildHTTPFamily validates HTTP family rules and indexes them by prefix.
func buildHTTPFamily(src map[string]int) (*segmenttrie.Trie[int], error) {
	if len(src) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[int]()
	for p, v := range src {
		if v < 100 || v > 599 {
			return nil, fmt.Errorf("mapper: invalid HTTP status %d in families for prefix %q", v, p)
		}
		if err := t.Insert(p, v); err != nil {
			return nil, fmt.Errorf("mapper: family %q: %w", p, err)
		}
	}
	return t, nil
}

// buildGRPCFamily validates gRPC family rules and indexes them by prefix.
func buildGRPCFamily(src map[string]int) (*segmenttrie.Trie[codes.Code], error) {
	if len(src) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[codes.Code]()
	for p, v := range src {
		if v < 0 || v > maxGRPCCode {
			return nil, fmt.Errorf("mapper: invalid gRPC code %d in families for prefix %q", v, p)
		}
		if err := t.Insert(p, codes.Code(v)); err != nil {
			return nil, fmt.Errorf("mapper: family %q: %w", p, err)
		}
	}
	return t, nil
}

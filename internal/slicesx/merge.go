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

// Package slicesx contains slice helpers missing from the standard library.
package slicesx

import "cmp"

// MergeKey merges slices that are each sorted by key into one sorted slice.
// key is called at most once per element.
//
// The merge is stable: elements with equal keys come out in the order of
// the slices holding them, and in their order within each slice.
//
// Time complexity is O(m log n), where m is the total number of elements and
// n is the number of slices.
func MergeKey[T any, K cmp.Ordered](slices [][]T, key func(*T) K) []T {
	switch len(slices) {
	case 0:
		return nil
	case 1:
		return slices[0]
	}

	// Each entry is the unmerged rest of one slice, keyed by its head.
	var h heap[K, T]
	var total int
	for i, slice := range slices {
		total += len(slice)
		if len(slice) > 0 {
			h.push(entry[K, T]{key: key(&slice[0]), src: i, rest: slice})
		}
	}

	output := make([]T, 0, total)
	for len(h) > 0 {
		e := h.pop()
		output = append(output, e.rest[0])
		if len(e.rest) > 1 {
			e.rest = e.rest[1:]
			e.key = key(&e.rest[0])
			h.push(e)
		}
	}
	return output
}

type entry[K cmp.Ordered, T any] struct {
	key  K
	src  int
	rest []T
}

// heap is a binary min-heap of entries, ordered by key and then by the
// index of the slice they came from.
type heap[K cmp.Ordered, T any] []entry[K, T]

func (h heap[K, T]) less(i, j int) bool {
	if c := cmp.Compare(h[i].key, h[j].key); c != 0 {
		return c < 0
	}
	return h[i].src < h[j].src
}

func (h *heap[K, T]) push(e entry[K, T]) {
	*h = append(*h, e)
	for j := len(*h) - 1; j > 0; {
		i := (j - 1) / 2 // parent
		if !h.less(j, i) {
			break
		}
		(*h)[i], (*h)[j] = (*h)[j], (*h)[i]
		j = i
	}
}

func (h *heap[K, T]) pop() entry[K, T] {
	s := *h
	n := len(s) - 1
	s[0], s[n] = s[n], s[0]
	for i := 0; ; {
		j := 2*i + 1 // left child
		if j >= n {
			break
		}
		if j+1 < n && s.less(j+1, j) {
			j++
		}
		if !s.less(j, i) {
			break
		}
		s[i], s[j] = s[j], s[i]
		i = j
	}
	e := s[n]
	*h = s[:n]
	return e
}

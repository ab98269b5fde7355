// Copyright The go-algebra Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package array provides slice helpers shared by the rewriting machinery.
// Since terms are immutable, every helper returns a fresh slice and never
// modifies its argument.
package array

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Prepend creates a new slice with the given item in front of the given
// slice.
func Prepend[T any](item T, slice []T) []T {
	nslice := make([]T, len(slice)+1)
	//
	nslice[0] = item
	copy(nslice[1:], slice)
	//
	return nslice
}

// Map constructs a new slice containing the result of applying a given
// function to every element of the given slice.
func Map[S, T any](items []S, fn func(S) T) []T {
	nitems := make([]T, len(items))
	//
	for i, item := range items {
		nitems[i] = fn(item)
	}
	//
	return nitems
}

// RemoveMatching constructs a new slice with all elements matching the given
// predicate removed.  The original slice is returned when nothing matches.
func RemoveMatching[T any](items []T, predicate Predicate[T]) []T {
	count := 0
	//
	for _, item := range items {
		if !predicate(item) {
			count++
		}
	}
	// Nothing to remove.
	if count == len(items) {
		return items
	}
	//
	nitems := make([]T, 0, count)
	//
	for _, item := range items {
		if !predicate(item) {
			nitems = append(nitems, item)
		}
	}
	//
	return nitems
}

// Flatten splices the expansion of any item for which the given function
// returns a non-nil slice, leaving other items in place.  The original slice
// is returned when no item expands.
func Flatten[T any](items []T, fn func(T) []T) []T {
	for _, item := range items {
		if fn(item) != nil {
			return forceFlatten(items, fn)
		}
	}
	// no change
	return items
}

func forceFlatten[T any](items []T, fn func(T) []T) []T {
	nitems := make([]T, 0, len(items))
	//
	for _, item := range items {
		if expansion := fn(item); expansion != nil {
			nitems = append(nitems, expansion...)
		} else {
			nitems = append(nitems, item)
		}
	}
	//
	return nitems
}

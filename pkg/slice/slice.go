// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, Tally) leveraging generics.

Every function allocates its result; none of them alias or modify the input.
*/
package slice

import "sort"

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements where predicate is true, preserving order.
//
// The result is never nil, so an empty match encodes as [] rather than null.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Count returns how many elements satisfy predicate.
func Count[T any](input []T, predicate func(T) bool) int {
	n := 0
	for _, v := range input {
		if predicate(v) {
			n++
		}
	}
	return n
}

// Bucket is one key of a [Tally] with its occurrence count.
type Bucket[K comparable] struct {
	Key   K
	Count int
}

// Tally counts the keys produced by keysOf for every element.
//
// One element may contribute to several buckets. Buckets are returned in
// first-encountered order.
func Tally[T any, K comparable](input []T, keysOf func(T) []K) []Bucket[K] {
	index := make(map[K]int)
	buckets := make([]Bucket[K], 0)

	for _, v := range input {
		for _, key := range keysOf(v) {
			if i, ok := index[key]; ok {
				buckets[i].Count++
				continue
			}
			index[key] = len(buckets)
			buckets = append(buckets, Bucket[K]{Key: key, Count: 1})
		}
	}

	return buckets
}

// RankByCount sorts buckets by descending count; equal counts keep their
// first-encountered order. The input is not modified.
func RankByCount[K comparable](buckets []Bucket[K]) []Bucket[K] {
	ranked := make([]Bucket[K], len(buckets))
	copy(ranked, buckets)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// Take returns a copy of at most the first n elements; n < 0 means all.
func Take[T any](input []T, n int) []T {
	if n < 0 || n > len(input) {
		n = len(input)
	}
	result := make([]T, n)
	copy(result, input[:n])
	return result
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with small generic
helpers used by the list endpoints.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements for which predicate is true, in input order.
// The result is always a fresh, non-nil slice.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Window returns the sub-slice for a zero-based offset and limit, clamped to bounds.
func Window[T any](input []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(input) || limit <= 0 {
		return []T{}
	}

	end := offset + limit
	if end > len(input) {
		end = len(input)
	}
	return input[offset:end]
}

// Dedupe drops repeated values while keeping the first occurrence of each.
func Dedupe[T comparable](input []T) []T {
	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer builds the optional fields of partial updates.
package pointer

// To returns a pointer to a copy of v, so literals can fill *T patch fields.
func To[T any](v T) *T {
	return &v
}

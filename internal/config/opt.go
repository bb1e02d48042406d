// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

// Opt is a value that remembers whether it was explicitly supplied. The zero
// Opt is "not supplied", which is distinct from a supplied zero value such as
// --legend=false.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a supplied Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// IsSet reports whether the value was supplied.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was supplied.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns o when supplied, otherwise fallback.
func (o Opt[T]) Or(fallback Opt[T]) Opt[T] {
	if o.set {
		return o
	}
	return fallback
}

// Value returns the held value, or the zero value of T when not supplied.
func (o Opt[T]) Value() T {
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when not supplied.
func (o Opt[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

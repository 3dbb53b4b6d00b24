// Package patch resolves partial updates against stored rows.
//
// Two policies are supported. Truthy keeps the stored value whenever the
// incoming one is absent or the zero value of its type, so 0, "" and false
// can never be written through an update. Presence only keeps the stored
// value when the field was absent (or null) in the request body.
package patch

import "github.com/saulo-duarte/acervo-api/internal/config"

type Mode = config.MergeMode

const (
	Truthy   = config.MergeTruthy
	Presence = config.MergePresence
)

// Value resolves a required column.
func Value[T comparable](mode Mode, incoming *T, current T) T {
	if accept(mode, incoming) {
		return *incoming
	}
	return current
}

// Nullable resolves a column that may hold NULL.
func Nullable[T comparable](mode Mode, incoming *T, current *T) *T {
	if accept(mode, incoming) {
		v := *incoming
		return &v
	}
	return current
}

// OrNil maps absent or zero values to nil, the way Create stores optional
// columns.
func OrNil[T comparable](v *T) *T {
	if IsZero(v) {
		return nil
	}
	out := *v
	return &out
}

// OrDefault returns def when v is absent or zero.
func OrDefault[T comparable](v *T, def T) T {
	if IsZero(v) {
		return def
	}
	return *v
}

func IsZero[T comparable](v *T) bool {
	var zero T
	return v == nil || *v == zero
}

func accept[T comparable](mode Mode, incoming *T) bool {
	if incoming == nil {
		return false
	}
	if mode == Presence {
		return true
	}
	return !IsZero(incoming)
}

// Package hash provides stable 64-bit identifiers for dataset column names.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given column name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

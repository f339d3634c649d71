package utils

import (
	"github.com/mitchellh/hashstructure/v2"
)

var hashOptions = &hashstructure.HashOptions{SlicesAsSets: true}

// HashAny hashes any value with order-insensitive slice semantics.
// Struct fields tagged `hash:"ignore"` do not contribute to the hash.
func HashAny(value any) (uint64, error) {
	hash, err := hashstructure.Hash(value, hashstructure.FormatV2, hashOptions)
	if err != nil {
		return 0, err
	}

	return hash, nil
}

package types

import "fmt"

// Validator is an interface for types that have a Validate method.
type Validator interface {
	Validate() error
}

// ValidateEntries validates each entry and rejects two entries sharing the
// key extracted by keyFunc.
func ValidateEntries[T Validator, K comparable](entries []T, keyFunc func(T) K) error {
	seen := make(map[K]struct{}, len(entries))
	for i, entry := range entries {
		key := keyFunc(entry)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w at index %d for key: %v", ErrDuplicateKey, i, key)
		}
		seen[key] = struct{}{}

		if err := entry.Validate(); err != nil {
			return err
		}
	}
	return nil
}

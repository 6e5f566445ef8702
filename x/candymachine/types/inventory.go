package types

import (
	"errors"
	"fmt"
	"strings"

	fractal "github.com/fractalnft/candymachine/types"
)

// InventoryBucket counts the not-yet-minted tokens whose id starts with Prefix.
type InventoryBucket struct {
	Prefix string `json:"prefix"`
	Count  uint64 `json:"count"`
}

func (b InventoryBucket) Validate() error {
	if b.Prefix == "" {
		return ErrInvalidInventory.Wrap("bucket prefix is empty")
	}
	if b.Count == 0 {
		return ErrInvalidInventory.Wrapf("bucket %q has zero count", b.Prefix)
	}
	return nil
}

func (b InventoryBucket) String() string {
	return fmt.Sprintf("%s:%d", b.Prefix, b.Count)
}

// Inventory is the ordered sequence of remaining buckets. It is persisted as
// a single value; indices are only stable until the next Decrement.
type Inventory []InventoryBucket

// Len returns the number of remaining buckets.
func (inv Inventory) Len() int {
	return len(inv)
}

// Remaining returns the number of tokens left across all buckets.
func (inv Inventory) Remaining() uint64 {
	var total uint64
	for _, b := range inv {
		total += b.Count
	}
	return total
}

// Pick returns the bucket at index.
func (inv Inventory) Pick(index int) (InventoryBucket, error) {
	if index < 0 || index >= len(inv) {
		return InventoryBucket{}, ErrIndexOutOfRange.Wrapf("index %d, %d buckets remaining", index, len(inv))
	}
	return inv[index], nil
}

// Decrement returns a copy of the inventory with one token taken from the
// bucket matching prefix. A bucket that reaches zero is removed.
func (inv Inventory) Decrement(prefix string) (Inventory, error) {
	index := -1
	for i, b := range inv {
		if b.Prefix == prefix {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrPrefixNotFound.Wrapf("prefix %q", prefix)
	}

	next := make(Inventory, 0, len(inv))
	next = append(next, inv[:index]...)
	if count := inv[index].Count - 1; count > 0 {
		next = append(next, InventoryBucket{Prefix: prefix, Count: count})
	}
	next = append(next, inv[index+1:]...)
	return next, nil
}

// Validate checks that no bucket is empty and prefixes are unique.
func (inv Inventory) Validate() error {
	err := fractal.ValidateEntries(inv, func(b InventoryBucket) string {
		return b.Prefix
	})
	if err != nil && !errors.Is(err, ErrInvalidInventory) {
		return ErrInvalidInventory.Wrap(err.Error())
	}
	return err
}

func (inv Inventory) String() string {
	parts := make([]string, len(inv))
	for i, b := range inv {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// TokenPrefix returns the bucket prefix a concrete token id belongs to: its
// first character.
func TokenPrefix(tokenID string) string {
	for _, r := range tokenID {
		return string(r)
	}
	return ""
}

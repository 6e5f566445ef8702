package store

import (
	"bytes"
	"testing"

	"cosmossdk.io/collections"
)

// CheckKeyCollisions fails the test when two store prefixes are equal or one
// is a prefix of another. Keys may be raw byte slices or collections prefixes.
func CheckKeyCollisions(t *testing.T, keys map[string]interface{}) {
	t.Helper()

	resolved := make(map[string][]byte, len(keys))
	for name, key := range keys {
		bz := keyBytes(t, name, key)
		if len(bz) == 0 {
			t.Fatalf("key %s is empty", name)
		}
		resolved[name] = bz
	}

	for name1, key1 := range resolved {
		for name2, key2 := range resolved {
			if name1 >= name2 {
				continue
			}
			switch {
			case bytes.Equal(key1, key2):
				t.Errorf("KEY COLLISION: %s and %s both use 0x%x", name1, name2, key1)
			case bytes.HasPrefix(key1, key2):
				t.Errorf("PREFIX COLLISION: %s (0x%x) is a prefix of %s (0x%x)", name2, key2, name1, key1)
			case bytes.HasPrefix(key2, key1):
				t.Errorf("PREFIX COLLISION: %s (0x%x) is a prefix of %s (0x%x)", name1, key1, name2, key2)
			}
		}
	}
}

func keyBytes(t *testing.T, name string, key interface{}) []byte {
	t.Helper()

	switch k := key.(type) {
	case []byte:
		return k
	case collections.Prefix:
		return k.Bytes()
	default:
		t.Fatalf("unknown key type for %s: %T", name, key)
		return nil
	}
}

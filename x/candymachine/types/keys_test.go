package types_test

import (
	"testing"

	"github.com/fractalnft/candymachine/testutil/store"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func TestNoKeyCollision(t *testing.T) {
	keys := map[string]interface{}{
		"ConfigKey":       types.ConfigKey,
		"InventoryKey":    types.InventoryKey,
		"WhitelistPrefix": types.WhitelistPrefix,
		"CursorKey":       types.CursorKey,
	}

	store.CheckKeyCollisions(t, keys)
}

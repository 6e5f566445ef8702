package ledger

import (
	"context"
	"sort"
	"sync"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

var _ types.OwnershipLedger = (*Memory)(nil)

// Memory is an ownership ledger kept in process memory. Like the CW721
// adapter it pages by owner first and filters the page by prefix afterwards.
type Memory struct {
	mu sync.RWMutex
	// owners maps contract => token id => owner
	owners map[string]map[string]string
}

func NewMemory() *Memory {
	return &Memory{owners: make(map[string]map[string]string)}
}

// Mint assigns tokenIDs of contract to owner, overwriting previous owners.
func (m *Memory) Mint(contract string, owner sdk.AccAddress, tokenIDs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tokens, ok := m.owners[contract]
	if !ok {
		tokens = make(map[string]string)
		m.owners[contract] = tokens
	}
	for _, id := range tokenIDs {
		tokens[id] = owner.String()
	}
}

// OwnerOf returns the owner of tokenID, or "" if it does not exist.
func (m *Memory) OwnerOf(contract, tokenID string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.owners[contract][tokenID]
}

// TokensOf returns every token of contract owned by owner, sorted.
func (m *Memory) TokensOf(contract string, owner sdk.AccAddress) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sortedTokensOf(contract, owner.String())
}

func (m *Memory) HeldTokenIDs(_ context.Context, contract string, owner sdk.AccAddress, prefix, startAfter string, limit uint32) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	page := make([]string, 0, limit)
	for _, id := range m.sortedTokensOf(contract, owner.String()) {
		if uint32(len(page)) >= limit {
			break
		}
		if startAfter != "" && id <= startAfter {
			continue
		}
		page = append(page, id)
	}
	return FilterPrefix(page, prefix), nil
}

func (m *Memory) Transfer(_ context.Context, contract string, sender, recipient sdk.AccAddress, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	owner, ok := m.owners[contract][tokenID]
	if !ok {
		return types.ErrTokenNotHeld.Wrapf("token %s of %s not found", tokenID, contract)
	}
	if owner != sender.String() {
		return types.ErrTokenNotHeld.Wrapf("token %s is owned by %s, not %s", tokenID, owner, sender)
	}
	m.owners[contract][tokenID] = recipient.String()
	return nil
}

func (m *Memory) sortedTokensOf(contract, owner string) []string {
	ids := []string{}
	for id, o := range m.owners[contract] {
		if o == owner {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

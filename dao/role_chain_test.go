package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swarna_errors "github.com/swarnapay/api/errors"
	"github.com/swarnapay/api/model"
)

func chainLookup(roles map[string]model.Role) func(id string) (*model.Role, error) {
	return func(id string) (*model.Role, error) {
		role, ok := roles[id]
		if !ok {
			return nil, swarna_errors.ErrRoleNotFound
		}
		return &role, nil
	}
}

func strPtr(s string) *string { return &s }

func TestWalkRoleChain_SingleRole(t *testing.T) {
	roles := map[string]model.Role{
		"admin": {ID: "admin", Name: "admin", Weight: 10},
	}

	chain, err := walkRoleChain("admin", chainLookup(roles))
	require.NoError(t, err)
	require.Len(t, chain, 1)
	assert.Equal(t, "admin", chain[0].Name)
}

func TestWalkRoleChain_FollowsParents(t *testing.T) {
	roles := map[string]model.Role{
		"support": {ID: "support", Name: "support", Weight: 1, ParentID: strPtr("admin")},
		"admin":   {ID: "admin", Name: "admin", Weight: 5, ParentID: strPtr("root")},
		"root":    {ID: "root", Name: "root", Weight: 10},
	}

	chain, err := walkRoleChain("support", chainLookup(roles))
	require.NoError(t, err)
	require.Len(t, chain, 3)
	// Requested role stays first; ancestors ordered by descending weight.
	assert.Equal(t, "support", chain[0].Name)
	assert.Equal(t, "root", chain[1].Name)
	assert.Equal(t, "admin", chain[2].Name)
}

func TestWalkRoleChain_DetectsCycle(t *testing.T) {
	roles := map[string]model.Role{
		"a": {ID: "a", Name: "a", ParentID: strPtr("b")},
		"b": {ID: "b", Name: "b", ParentID: strPtr("a")},
	}

	_, err := walkRoleChain("a", chainLookup(roles))
	assert.ErrorIs(t, err, swarna_errors.ErrRoleCycle)
}

func TestWalkRoleChain_SelfParentIsCycle(t *testing.T) {
	roles := map[string]model.Role{
		"a": {ID: "a", Name: "a", ParentID: strPtr("a")},
	}

	_, err := walkRoleChain("a", chainLookup(roles))
	assert.ErrorIs(t, err, swarna_errors.ErrRoleCycle)
}

func TestWalkRoleChain_DepthCap(t *testing.T) {
	roles := make(map[string]model.Role)
	for i := 0; i < maxRoleDepth+5; i++ {
		id := string(rune('a' + i))
		parent := string(rune('a' + i + 1))
		roles[id] = model.Role{ID: id, Name: id, ParentID: strPtr(parent)}
	}

	_, err := walkRoleChain("a", chainLookup(roles))
	assert.ErrorIs(t, err, swarna_errors.ErrRoleCycle)
}

func TestWalkRoleChain_MissingRolePropagates(t *testing.T) {
	roles := map[string]model.Role{
		"a": {ID: "a", Name: "a", ParentID: strPtr("gone")},
	}

	_, err := walkRoleChain("a", chainLookup(roles))
	assert.ErrorIs(t, err, swarna_errors.ErrRoleNotFound)
}

package repositories

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The policy table is what decides which rows die with the account and
// which are orphaned, so a regression here silently changes retention.
func TestAccountDeletePolicies(t *testing.T) {
	type relation struct {
		model  string
		column string
	}

	cascades := make(map[relation]bool)
	orphans := make(map[relation]bool)

	for _, rel := range accountDeletePolicies {
		key := relation{
			model:  reflect.TypeOf(rel.model).Elem().Name(),
			column: rel.column,
		}
		switch rel.policy {
		case policyCascade:
			cascades[key] = true
		case policyOrphan:
			orphans[key] = true
		default:
			t.Fatalf("unknown policy %v for %s", rel.policy, key.model)
		}
	}

	// leaves are the single orphan-only relation: content outlives the
	// account with the owner reference cleared
	require.Len(t, orphans, 1)
	assert.True(t, orphans[relation{"Leaf", "account_id"}])

	expectedCascades := []relation{
		{"Board", "account_id"},
		{"Comment", "account_id"},
		{"AccountLike", "giving_account_id"},
		{"AccountLike", "receiving_account_id"},
		{"BoardLike", "account_id"},
		{"PlantObj", "account_id"},
		{"Point", "account_id"},
		{"PointHistory", "account_id"},
	}
	require.Len(t, cascades, len(expectedCascades))
	for _, rel := range expectedCascades {
		assert.True(t, cascades[rel], "missing cascade for %s.%s", rel.model, rel.column)
	}
}

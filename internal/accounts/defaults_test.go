package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/statements/internal/model"
)

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart("corporation")
	require.Len(t, chart, 87)

	for _, acct := range chart {
		assert.NotEmpty(t, acct.Name, "account %s missing name", acct.Code)
		assert.True(t, acct.Role.Valid(), "account %s has unknown role %q", acct.Code, acct.Role)
		assert.Equal(t, acct.Role.NormalBalance(), acct.Balance,
			"account %s balance type disagrees with role %s", acct.Code, acct.Role)
	}
}

func TestDefaultChart_CodesAreUnique(t *testing.T) {
	chart := DefaultChart("corporation")
	for code, n := range CodeCounts(chart) {
		assert.Equal(t, 1, n, "code %s appears %d times", code, n)
	}
	assert.NoError(t, VerifyUniqueCodes(chart))
}

func TestDefaultChart_ParentsExist(t *testing.T) {
	svc := NewService(DefaultChart("corporation"))
	for _, acct := range svc.All() {
		if acct.ParentCode == "" {
			continue
		}
		assert.True(t, svc.Exists(acct.ParentCode), "account %s has missing parent %s", acct.Code, acct.ParentCode)
	}
}

func TestDefaultChart_FreshSlice(t *testing.T) {
	a := DefaultChart("corporation")
	a[0].Name = "Changed"

	b := DefaultChart("corporation")
	assert.Equal(t, "Cash", b[0].Name)
}

func TestDefaultChart_UnknownEntityType(t *testing.T) {
	assert.Equal(t, DefaultChart("corporation"), DefaultChart("unknown_type"))
}

func TestDefaultChart_CoversEveryRole(t *testing.T) {
	svc := NewService(DefaultChart("corporation"))
	for _, r := range model.Roles() {
		assert.NotEmpty(t, svc.ByRole(r), "no default account for role %s", r)
	}
}

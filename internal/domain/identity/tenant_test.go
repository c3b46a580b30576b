package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	t.Run("creates tenant with normalized subdomain", func(t *testing.T) {
		tenant, err := NewTenant("  Acme-Mail ", "Acme Corp")
		require.NoError(t, err)
		assert.Equal(t, "acme-mail", tenant.Subdomain)
		assert.Equal(t, "Acme Corp", tenant.Name)
		assert.True(t, tenant.IsActive)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewTenant("acme", "")
		assert.Error(t, err)
	})
}

func TestValidateSubdomain(t *testing.T) {
	valid := []string{"acme", "acme-mail", "a", "tenant42"}
	for _, s := range valid {
		assert.NoError(t, ValidateSubdomain(s), s)
	}

	invalid := []string{"", "-acme", "acme-", "ac me", "Acme", "acme.mail"}
	for _, s := range invalid {
		assert.Error(t, ValidateSubdomain(s), s)
	}
}

package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/turbo/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("core")
	is2 := domain.NewInternedString("core")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, is1, is2)
	assert.Equal(t, "core", is1.String())
	assert.False(t, is1.IsZero())

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestInternedStringJSON(t *testing.T) {
	type unitRef struct {
		Unit domain.InternedString `json:"unit"`
	}

	data, err := json.Marshal(unitRef{Unit: domain.NewInternedString("com.acme:core")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit":"com.acme:core"}`, string(data))

	var decoded unitRef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "com.acme:core", decoded.Unit.String())
}

func TestNewInternedStrings(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		res := domain.NewInternedStrings([]string{"compile", "test", "package"})
		require.Len(t, res, 3)
		assert.Equal(t, "compile", res[0].String())
		assert.Equal(t, "test", res[1].String())
		assert.Equal(t, "package", res[2].String())
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, domain.NewInternedStrings(nil))
		assert.Nil(t, domain.NewInternedStrings([]string{}))
	})

	t.Run("duplicates share a handle", func(t *testing.T) {
		res := domain.NewInternedStrings([]string{"test", "test"})
		assert.Equal(t, res[0].Value(), res[1].Value())
	})
}

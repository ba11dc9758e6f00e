package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

func TestSellerResolvers(t *testing.T) {
	sellers := []*domain.Seller{
		{ID: 1, Name: "João Pereira", TeamID: 10},
		{ID: 2, Name: "Carla Souza", TeamID: 20},
	}

	t.Run("exato ignora caixa e espaços nas bordas", func(t *testing.T) {
		resolver := NewExactResolver(sellers)

		ref, ok := resolver.Resolve("  carla souza ")
		assert.True(t, ok)
		assert.Equal(t, 2, ref.UserID)
		assert.Equal(t, 20, ref.TeamID)

		_, ok = resolver.Resolve("Joao Pereira") // sem acento não casa no exato
		assert.False(t, ok)
	})

	t.Run("normalizado casa sem acentos", func(t *testing.T) {
		resolver := NewNormalizedResolver(sellers)

		ref, ok := resolver.Resolve("Joao Pereira")
		assert.True(t, ok)
		assert.Equal(t, 1, ref.UserID)
	})

	t.Run("mapeamento manual resolve apelidos", func(t *testing.T) {
		resolver := NewMappingResolver(map[string]*domain.SellerRef{
			"Dra. Carla": {UserID: 2, TeamID: 20},
		})

		ref, ok := resolver.Resolve("dra. carla")
		assert.True(t, ok)
		assert.Equal(t, 2, ref.UserID)
	})

	t.Run("cadeia tenta na ordem e para no primeiro acerto", func(t *testing.T) {
		chain := NewChainResolver(
			NewMappingResolver(map[string]*domain.SellerRef{
				"Carla Souza": {UserID: 99, TeamID: 90},
			}),
			NewExactResolver(sellers),
		)

		ref, ok := chain.Resolve("Carla Souza")
		assert.True(t, ok)
		assert.Equal(t, 99, ref.UserID)

		ref, ok = chain.Resolve("João Pereira")
		assert.True(t, ok)
		assert.Equal(t, 1, ref.UserID)

		_, ok = chain.Resolve("Desconhecida")
		assert.False(t, ok)
	})
}

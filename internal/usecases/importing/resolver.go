package importing

import (
	"strings"

	"github.com/vfg2006/clinic-crm-api/internal/domain"
)

// SellerResolver traduz o nome livre de vendedor vindo da planilha para um
// usuário interno. Implementações são encadeáveis: a primeira que resolver
// vence.
type SellerResolver interface {
	Resolve(name string) (*domain.SellerRef, bool)
}

// ExactResolver casa o nome exatamente como cadastrado, ignorando apenas
// espaços nas bordas e diferença de caixa.
type ExactResolver struct {
	byName map[string]*domain.SellerRef
}

func NewExactResolver(sellers []*domain.Seller) *ExactResolver {
	byName := make(map[string]*domain.SellerRef, len(sellers))
	for _, seller := range sellers {
		byName[strings.ToLower(strings.TrimSpace(seller.Name))] = &domain.SellerRef{
			UserID: seller.ID,
			TeamID: seller.TeamID,
		}
	}
	return &ExactResolver{byName: byName}
}

func (r *ExactResolver) Resolve(name string) (*domain.SellerRef, bool) {
	ref, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return ref, ok
}

// NormalizedResolver casa o nome após remover acentos, útil para planilhas
// digitadas sem acentuação ("Joao" vs "João").
type NormalizedResolver struct {
	byName map[string]*domain.SellerRef
}

func NewNormalizedResolver(sellers []*domain.Seller) *NormalizedResolver {
	byName := make(map[string]*domain.SellerRef, len(sellers))
	for _, seller := range sellers {
		byName[normalizeName(seller.Name)] = &domain.SellerRef{
			UserID: seller.ID,
			TeamID: seller.TeamID,
		}
	}
	return &NormalizedResolver{byName: byName}
}

func (r *NormalizedResolver) Resolve(name string) (*domain.SellerRef, bool) {
	ref, ok := r.byName[normalizeName(name)]
	return ref, ok
}

// MappingResolver resolve por apelidos configurados manualmente
// ("Dra. Ana" -> usuária Ana). Usado como primeira camada da cadeia quando o
// mapeamento existe.
type MappingResolver struct {
	aliases map[string]*domain.SellerRef
}

func NewMappingResolver(aliases map[string]*domain.SellerRef) *MappingResolver {
	normalized := make(map[string]*domain.SellerRef, len(aliases))
	for alias, ref := range aliases {
		normalized[normalizeName(alias)] = ref
	}
	return &MappingResolver{aliases: normalized}
}

func (r *MappingResolver) Resolve(name string) (*domain.SellerRef, bool) {
	ref, ok := r.aliases[normalizeName(name)]
	return ref, ok
}

// ChainResolver tenta cada resolvedor na ordem recebida.
type ChainResolver struct {
	resolvers []SellerResolver
}

func NewChainResolver(resolvers ...SellerResolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

func (r *ChainResolver) Resolve(name string) (*domain.SellerRef, bool) {
	for _, resolver := range r.resolvers {
		if ref, ok := resolver.Resolve(name); ok {
			return ref, true
		}
	}
	return nil, false
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "õ", "o", "ô", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

func normalizeName(name string) string {
	return accentReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

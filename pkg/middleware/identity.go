package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/clinic-crm-api/pkg/log"
)

type contextKey string

// ContextKeyIdentity guarda no contexto a identidade de quem invocou a
// operação, para atribuição de auditoria.
const ContextKeyIdentity contextKey = "identity"

// identityClaims são os claims emitidos pela camada de autenticação upstream.
type identityClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IdentityMiddleware extrai a identidade do chamador de um token JWT emitido
// upstream, quando presente. A autenticação em si acontece fora deste
// serviço: um token ausente ou inválido resulta em atribuição anônima e
// nunca bloqueia a operação.
func IdentityMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := resolveIdentity(r, secret)
			if identity != "" {
				ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveIdentity(r *http.Request, secret string) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		log.L.WithError(err).Debug("Token de identidade ausente ou inválido, seguindo como anônimo")
		return ""
	}

	if claims.Email != "" {
		return claims.Email
	}
	if claims.Name != "" {
		return claims.Name
	}
	return claims.Subject
}

// IdentityFromContext retorna a identidade do chamador, ou vazio para
// operações anônimas/disparadas por serviço.
func IdentityFromContext(ctx context.Context) string {
	if identity, ok := ctx.Value(ContextKeyIdentity).(string); ok {
		return identity
	}
	return ""
}

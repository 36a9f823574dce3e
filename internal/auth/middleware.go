package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// CtxAgentID es la clave de contexto con el ID del agente autenticado.
const CtxAgentID ctxKey = "agenteID"

// Middleware exige un JWT válido en el header Authorization.
func Middleware(secreto string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(h, "Bearer ") {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			raw := strings.TrimPrefix(h, "Bearer ")
			claims, err := ParseAndValidate(secreto, raw)
			if err != nil {
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), CtxAgentID, claims.AgentID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AgentIDFromContext devuelve el agente autenticado, si lo hay.
func AgentIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxAgentID).(string)
	return id, ok
}

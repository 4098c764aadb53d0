package httpadapter

import (
	"net/http"
	"strings"

	"crowdfund/internal/adapter/auth"
	"crowdfund/internal/core/domain"
)

// authenticate resolves the bearer token into an identity and stores it in
// the request context. Requests without a valid token never reach the
// route handlers.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			h.writeError(w, r, domain.New(domain.CodeUnauthenticated, "bearer token is required"))
			return
		}
		who, err := h.authn.Authenticate(r.Context(), token)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), who)))
	})
}

// caller returns the identity stored by authenticate.
func caller(r *http.Request) domain.Identity {
	who, _ := auth.IdentityFrom(r.Context())
	return who
}

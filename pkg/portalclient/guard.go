package portalclient

import "strings"

// Guard decides whether a navigation target may render for the current
// session state. Public routes always pass; everything under a role prefix
// needs that role's token in the store. A failed check redirects to the
// landing page, replacing the history entry so back does not bounce.
type Guard struct {
	creds  CredentialStore
	public map[string]bool
}

// DefaultPublicRoutes are reachable with no session at all.
var DefaultPublicRoutes = []string{"/", "/login", "/signup", "/physician-login", "/physician-signup"}

func NewGuard(creds CredentialStore, publicRoutes ...string) *Guard {
	if len(publicRoutes) == 0 {
		publicRoutes = DefaultPublicRoutes
	}
	public := make(map[string]bool, len(publicRoutes))
	for _, r := range publicRoutes {
		public[r] = true
	}
	return &Guard{creds: creds, public: public}
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allow      bool
	RedirectTo string
	// Replace means the redirect should overwrite the current history
	// entry instead of pushing one.
	Replace bool
}

var redirectHome = Decision{RedirectTo: "/", Replace: true}

// roleForRoute maps an app route to the role it requires.
func roleForRoute(route string) (Role, bool) {
	switch {
	case strings.HasPrefix(route, "/physician"):
		return RolePhysician, true
	case strings.HasPrefix(route, "/patient"):
		return RolePatient, true
	}
	return "", false
}

// Check evaluates a route. Unknown non-public routes redirect home rather
// than guessing a role.
func (g *Guard) Check(route string) Decision {
	if g.public[route] {
		return Decision{Allow: true}
	}
	role, ok := roleForRoute(route)
	if !ok {
		return redirectHome
	}
	if g.creds.Token(role) == "" {
		return redirectHome
	}
	return Decision{Allow: true}
}

// Package access decides what happens to a request given whether the caller
// is signed in and which kind of route it targets.
package access

// RouteClass groups routes that share an access rule.
type RouteClass int

const (
	// RouteProtected requires a session (secrets, submit).
	RouteProtected RouteClass = iota
	// RouteCredentialEntry accepts credentials (login, register, Google sign-in).
	RouteCredentialEntry
	// RoutePublic is the landing page.
	RoutePublic
	// RouteLogout ends the session.
	RouteLogout
	// RouteOpen is never gated (health, metrics).
	RouteOpen
)

// Action is the outcome of a decision.
type Action int

const (
	Allow Action = iota
	RedirectLogin
	RedirectProtected
	EndSession
)

// Paths used by redirect actions.
const (
	LoginPath     = "/login"
	ProtectedPath = "/secrets"
	HomePath      = "/"
)

// LoginRequiredFlash is shown on the login page after an anonymous caller
// tried to reach a protected route.
const LoginRequiredFlash = "You need to login first."

// Decision tells the caller what to do with the request.
type Decision struct {
	Action Action
	// Location is set for redirecting actions.
	Location string
	// Flash is queued before redirecting, when set.
	Flash string
}

// Decide maps (signed in, route class) to a decision. It has no side
// effects; the caller performs the redirect or session teardown.
func Decide(authenticated bool, class RouteClass) Decision {
	switch class {
	case RouteProtected:
		if !authenticated {
			return Decision{Action: RedirectLogin, Location: LoginPath, Flash: LoginRequiredFlash}
		}
	case RouteCredentialEntry, RoutePublic:
		if authenticated {
			return Decision{Action: RedirectProtected, Location: ProtectedPath}
		}
	case RouteLogout:
		return Decision{Action: EndSession, Location: HomePath}
	case RouteOpen:
	}

	return Decision{Action: Allow}
}

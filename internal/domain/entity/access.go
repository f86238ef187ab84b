package entity

// AccessState is the single deterministic UI state of the admin
// dashboard gate, derived from three independently-resolving signals:
// identity presence, profile fetch result and admin-role check.
type AccessState string

const (
	// AccessInitializing means at least one signal is still pending.
	AccessInitializing AccessState = "initializing"
	// AccessUnauthenticated means the identity probe settled with no identity.
	AccessUnauthenticated AccessState = "unauthenticated"
	// AccessProfileIncomplete means the caller has no profile yet and
	// must complete setup before anything else.
	AccessProfileIncomplete AccessState = "profile_incomplete"
	// AccessUnauthorized means the admin-role check settled negative.
	AccessUnauthorized AccessState = "unauthorized"
	// AccessAuthorized grants the protected content.
	AccessAuthorized AccessState = "authorized"
	// AccessError means a profile or role fetch hard-failed. Kept
	// distinct from AccessInitializing so a broken gateway is
	// observable instead of loading forever.
	AccessError AccessState = "error"
)

// String returns the string representation of the AccessState.
func (s AccessState) String() string {
	return string(s)
}

// SignalStatus describes how far one asynchronous access signal has
// progressed.
type SignalStatus int

const (
	// SignalPending means the check has not completed yet.
	SignalPending SignalStatus = iota
	// SignalReady means the check completed with a result.
	SignalReady
	// SignalFailed means the check completed with a hard error.
	SignalFailed
)

// AccessSignals captures the raw inputs of one access evaluation.
type AccessSignals struct {
	// IdentitySettled is true once the identity provider has finished
	// its startup probe, whether or not an identity was found.
	IdentitySettled bool
	Identity        Identity

	ProfileStatus SignalStatus
	Profile       *UserProfile // nil means "not yet created", only meaningful when ProfileStatus is SignalReady.
	ProfileErr    error

	RoleStatus SignalStatus
	IsAdmin    bool
	RoleErr    error
}

// AccessResolution is the outcome of resolving one set of signals.
// Cause is non-nil only when State is AccessError.
type AccessResolution struct {
	State AccessState
	Cause error
}

// ResolveAccessState maps signals to the one state to render. The
// guards run in strict priority order and the first match wins:
//
//  1. Initializing — identity not settled, or identity present with a
//     profile fetch or role check still pending.
//  2. Unauthenticated — settled, no identity.
//  3. ProfileIncomplete — profile fetch completed and returned absence.
//  4. Unauthorized — role check completed negative.
//  5. Authorized — everything present and positive.
//
// A hard fetch failure short-circuits to AccessError before the
// pending guard, so a failed signal is never mistaken for a slow one.
func ResolveAccessState(sig AccessSignals) AccessResolution {
	if !sig.IdentitySettled {
		return AccessResolution{State: AccessInitializing}
	}

	if sig.Identity.IsZero() {
		return AccessResolution{State: AccessUnauthenticated}
	}

	if sig.ProfileStatus == SignalFailed {
		return AccessResolution{State: AccessError, Cause: sig.ProfileErr}
	}
	if sig.RoleStatus == SignalFailed {
		return AccessResolution{State: AccessError, Cause: sig.RoleErr}
	}

	if sig.ProfileStatus == SignalPending || sig.RoleStatus == SignalPending {
		return AccessResolution{State: AccessInitializing}
	}

	if sig.Profile == nil {
		return AccessResolution{State: AccessProfileIncomplete}
	}

	if !sig.IsAdmin {
		return AccessResolution{State: AccessUnauthorized}
	}

	return AccessResolution{State: AccessAuthorized}
}

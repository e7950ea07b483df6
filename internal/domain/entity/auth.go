package entity

// VerifiedToken is the result of a successful token verification against
// the identity provider.
type VerifiedToken struct {
	UID    string
	Claims map[string]any
}

// RegistrationClaims returns the fixed custom claim set attached to every
// registered identity. Re-applying it is safe; the set fully replaces any
// previous custom claims.
func RegistrationClaims() map[string]any {
	return map[string]any{
		"role":    "Dawggy",
		"version": "1.0",
	}
}

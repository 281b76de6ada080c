package auth

import (
	"slices"
	"strings"
)

// Scope is a capability a bearer token carries.
type Scope string

const (
	ScopeMeProfile  Scope = "me_profile"
	ScopeOrdersList Scope = "orders:list"
	ScopeOrdersPost Scope = "orders:post"
)

// KnownScopes lists every scope a client may request, with its description.
var KnownScopes = map[Scope]string{
	ScopeMeProfile:  "Read information about the current user.",
	ScopeOrdersList: "Read orders.",
	ScopeOrdersPost: "Accept, drop off and cancel orders.",
}

// ParseScopes reads a space separated scope list as sent in the token
// request. Unknown and repeated scopes are dropped; order is kept.
func ParseScopes(s string) []Scope {
	fields := strings.Fields(s)
	scopes := make([]Scope, 0, len(fields))
	for _, f := range fields {
		sc := Scope(f)
		if _, ok := KnownScopes[sc]; !ok || slices.Contains(scopes, sc) {
			continue
		}
		scopes = append(scopes, sc)
	}
	return scopes
}

// Strings converts scopes to their wire form.
func Strings(scopes []Scope) []string {
	out := make([]string, len(scopes))
	for i, sc := range scopes {
		out[i] = string(sc)
	}
	return out
}

// FromStrings converts wire scopes back. Values are kept as is: a token
// can only carry what was signed into it.
func FromStrings(ss []string) []Scope {
	out := make([]Scope, len(ss))
	for i, s := range ss {
		out[i] = Scope(s)
	}
	return out
}

// Missing returns the scopes of required absent from granted.
func Missing(granted, required []Scope) []Scope {
	var missing []Scope
	for _, sc := range required {
		if !slices.Contains(granted, sc) {
			missing = append(missing, sc)
		}
	}
	return missing
}

package auth

// Principal is the authenticated identity bound to a request after its token
// passed validation. It is derived entirely from the token and never
// persisted.
type Principal struct {
	Subject     string
	Authorities []string
}

// HasAuthority reports whether the principal carries the given authority.
func (p *Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

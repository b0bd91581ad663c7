package usecase

import "crypto/subtle"

// AdminGate guards the admin panel with a single shared passcode.
type AdminGate struct {
	passcode []byte
}

// NewAdminGate stores the configured passcode. An empty passcode locks the panel.
func NewAdminGate(passcode string) *AdminGate {
	return &AdminGate{passcode: []byte(passcode)}
}

// Authorize compares the candidate with the passcode in constant time.
func (g *AdminGate) Authorize(candidate string) bool {
	if len(g.passcode) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), g.passcode) == 1
}

package auth

import "time"

// WithClock returns a copy of the issuer that reads time from now.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	cp := *i
	cp.now = now
	return &cp
}

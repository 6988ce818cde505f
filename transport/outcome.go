package transport

// Outcome describes how the forwarded request was derived
type Outcome string

const (
	// OutcomeAttached the token header was set on a clone
	OutcomeAttached Outcome = "attached"
	// OutcomeNoToken no token was available, the original request is forwarded
	OutcomeNoToken Outcome = "no_token"
	// OutcomeExpired the token expired, an unchanged clone is forwarded
	OutcomeExpired Outcome = "expired"
	// OutcomeNotWhitelisted the destination is not whitelisted, the original request is forwarded
	OutcomeNotWhitelisted Outcome = "not_whitelisted"
	// OutcomeError nothing is forwarded
	OutcomeError Outcome = "error"
)

package constants

const (
	// ContextKeyUserID is the context key under which the authenticated
	// user's ID is stored after token verification.
	ContextKeyUserID = "user_id"
)

package constant

type contextKey string

const (
	// UserIDKey holds the authenticated user's id in the request context.
	UserIDKey contextKey = "user_id"
	// AuthTokenKey holds the raw bearer token, forwarded to the commerce backend.
	AuthTokenKey contextKey = "auth_token"
)

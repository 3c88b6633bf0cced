package context

import (
	"context"

	"github.com/blindtreasure/orderview/constant"
)

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

func GetAuthToken(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AuthTokenKey)
	if v == nil {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// WithUser embeds the authenticated user's id and raw bearer token, which the
// backend repository forwards upstream.
func WithUser(ctx context.Context, userID, token string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.AuthTokenKey, token)
}

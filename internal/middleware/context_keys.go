package middleware

import "context"

// subjectKey is the key used to store the authenticated caller (JWT subject) in the request context.
const subjectKey = contextKey("subject")

// GetSubjectFromCtx retrieves the authenticated caller from the request context.
// It returns false when the request was not authenticated (auth disabled).
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

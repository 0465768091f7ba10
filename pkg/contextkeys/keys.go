package contextkeys

type contextKey string

const (
	UserKey contextKey = "User"
)

package domain

// Settings is the singleton configuration object read on every login and on
// every authenticated request. TokenExpiry is a Go duration string ("24h",
// "90m"); invalid or empty values fall back to a 24h TTL at the point of use.
type Settings struct {
	JWTSecret   string `json:"jwtSecret"`
	TokenExpiry string `json:"tokenExpiry"`
}

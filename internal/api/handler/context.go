package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// messageResponse is the canonical error/info envelope: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// ctxUserID extracts the userId claim injected by the Auth middleware. A
// missing claim means the middleware did not run on this route; fail closed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("userId").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims.")
	}
	return userID, nil
}

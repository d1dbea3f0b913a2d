package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/spoonacular"
)

// SessionCookie names the cookie carrying the search session ID.
const SessionCookie = "rf_session"

// parseUintParam parses a string into a uint.
func parseUintParam(param string) (uint, error) {
	parsed, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	if parsed > uint64(^uint(0)) {
		return 0, fmt.Errorf("value out of range for uint: %d", parsed)
	}
	return uint(parsed), nil
}

// parseIntQuery reads an integer query parameter, falling back to def
// when it is missing or malformed and clamping it to [min, max].
func parseIntQuery(c *gin.Context, key string, def, min, max int) int {
	v := def
	if s := c.Query(key); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			v = parsed
		}
	}
	if v < min {
		v = min
	}
	if max > 0 && v > max {
		v = max
	}
	return v
}

// sessionID returns the caller's search session ID, if any.
func sessionID(c *gin.Context) string {
	id, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return id
}

// setSessionID stores the search session ID in a cookie.
func setSessionID(c *gin.Context, id string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, id, int(ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
}

// generationParam reads the search generation a load-more request refers
// to from the form body or the query string. Missing or malformed values
// yield zero, which LoadMore treats as unchecked.
func generationParam(c *gin.Context) uint64 {
	v := c.PostForm("generation")
	if v == "" {
		v = c.Query("generation")
	}
	gen, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return gen
}

// errorStatus maps an error to the HTTP status reported to the client.
func errorStatus(err error) int {
	if fe, ok := spoonacular.AsFetchError(err); ok {
		switch {
		case fe.Timeout():
			return http.StatusGatewayTimeout
		case fe.NotFound():
			return http.StatusNotFound
		default:
			return http.StatusBadGateway
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrNoSearch):
		return http.StatusNotFound
	case errors.Is(err, service.ErrLoadInFlight), errors.Is(err, service.ErrStaleResponse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the error text safe to show to end users.
func userMessage(err error) string {
	if fe, ok := spoonacular.AsFetchError(err); ok {
		if fe.StatusCode == 0 {
			return "failed to fetch " + fe.Resource + ": upstream unavailable"
		}
		return fe.Error()
	}
	if errors.Is(err, service.ErrStaleResponse) {
		return "this search was replaced by a newer one; reload the page to continue"
	}
	switch errorStatus(err) {
	case http.StatusInternalServerError:
		return "something went wrong"
	default:
		return err.Error()
	}
}

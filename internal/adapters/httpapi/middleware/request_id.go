package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	maxRequestIDLen = 64
)

// RequestID echoes a well-formed inbound X-Request-ID or generates a
// fresh one. Inbound values are only trusted when short and limited to
// URL-safe characters; anything else is replaced so the ID can be
// logged verbatim.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if !validRequestID(id) {
			id = newRequestID()
		}

		c.Header(requestIDHeader, id)
		c.Set(requestIDKey, id)

		c.Next()
	}
}

// RequestIDFrom returns the ID set by RequestID, or "" when the
// middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	v, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}

	id, ok := v.(string)
	if !ok {
		return ""
	}

	return id
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}

	for i := 0; i < len(id); i++ {
		b := id[i]
		switch {
		case b >= 'a' && b <= 'z':
		case b >= 'A' && b <= 'Z':
		case b >= '0' && b <= '9':
		case b == '-' || b == '.' || b == '_':
		default:
			return false
		}
	}

	return true
}

func newRequestID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand is documented never to fail.
		panic(err)
	}

	return hex.EncodeToString(buf[:])
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract pins exact bodies (token/user pairs, raw project
// records, field error maps), so responses are written without an
// envelope. The request id travels in the X-Request-ID header instead.

// FieldErrors maps an input field to the list of messages for it.
type FieldErrors map[string][]string

// ValidationFailed writes a 422 whose body is the field error map itself.
func ValidationFailed(c *gin.Context, errs FieldErrors) {
	c.JSON(http.StatusUnprocessableEntity, errs)
}

// Unauthenticated writes the fixed 401 body and aborts the request.
func Unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
}

// NotAuthorized writes the fixed 403 body for ownership failures.
func NotAuthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
}

// NotFound writes the fixed 404 body.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

// ServerError writes a generic 500 and aborts the request; collaborator
// failures are not translated into anything more specific.
func ServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

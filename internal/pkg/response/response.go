package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Machine-readable error kinds. Every failure response carries exactly one of these so
// clients can tell "place missing" from "not your note" from "datastore unavailable"
// without string-matching the human message.
const (
	KindValidation         = "validation"
	KindUnauthorized       = "unauthorized"
	KindNotFound           = "not_found"
	KindDuplicateEmail     = "duplicate_email"
	KindInvalidCredentials = "invalid_credentials"
	KindSummaryUnavailable = "summary_unavailable"
	KindPersistence        = "persistence"
)

// OK sends a 200 response. Arrays/slices are wrapped in {data: [...]}.
func OK(c *gin.Context, data interface{}) {
	if data != nil {
		v := reflect.ValueOf(data)
		if v.Kind() == reflect.Slice {
			c.JSON(http.StatusOK, gin.H{"data": data})
			return
		}
	}
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest sends a 400 validation error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, KindValidation, message)
}

// Unauthorized sends a uniform 401 response. Deliberately identical for missing,
// malformed, and expired credentials.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, KindUnauthorized, "authentication required")
}

// NotFound sends a 404 response. Used both for genuinely absent resources and for
// resources owned by someone else (ownership-blind).
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, KindNotFound, message)
}

// MethodNotAllowed sends a 405 response.
func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed, KindValidation, "method not allowed")
}

// InternalError sends a 500 persistence-class error response. The underlying error is
// never echoed to the client.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, KindPersistence, "something went wrong, try again later")
}

// BadGateway sends a 502 response for upstream collaborator failures.
func BadGateway(c *gin.Context, kind, message string) {
	Error(c, http.StatusBadGateway, kind, message)
}

// Error sends an arbitrary error envelope.
func Error(c *gin.Context, code int, kind, message string) {
	c.AbortWithStatusJSON(code, gin.H{"ok": 0, "code": code, "kind": kind, "message": message})
}

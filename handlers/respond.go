package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Stable machine-readable error codes. UI callers branch on these —
// in particular MODULE_DISABLED renders a "temporarily unavailable"
// screen rather than a generic failure.
const (
	CodeModuleDisabled      = "MODULE_DISABLED"
	CodeNotFound            = "NOT_FOUND"
	CodeEmptyCart           = "EMPTY_CART"
	CodeInsufficientStock   = "INSUFFICIENT_STOCK"
	CodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	CodeInvalidState        = "INVALID_STATE"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeStoreUnavailable    = "STORE_UNAVAILABLE"
	CodeValidation          = "VALIDATION_ERROR"
	CodeConflict            = "CONFLICT"
)

func fail(c *gin.Context, status int, code, msg string) {
	c.JSON(status, gin.H{"code": code, "error": msg})
}

// failDB maps a persistence error: "no data" and "can't talk to data"
// are distinct conditions for callers.
func failDB(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, CodeNotFound, notFoundMsg)
		return
	}
	fail(c, http.StatusServiceUnavailable, CodeStoreUnavailable, "Cannot reach the data store")
}

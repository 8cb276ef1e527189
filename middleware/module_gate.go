package middleware

import (
	"errors"
	"net/http"

	"superapp-api/config"
	"superapp-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ModuleRequired short-circuits every request for a disabled module
// before any catalog or transaction logic runs. The flag is read from
// the database on each request so that toggling a module takes effect
// immediately, with no stale cache.
func ModuleRequired(name models.ModuleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m models.Module
		err := config.DB.Where("name = ?", name).First(&m).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// An uninitialized module is treated as disabled.
			moduleDisabled(c, name)
		case err != nil:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code":  "STORE_UNAVAILABLE",
				"error": "Cannot reach the data store",
			})
			c.Abort()
		case !m.IsActive:
			moduleDisabled(c, name)
		default:
			c.Next()
		}
	}
}

func moduleDisabled(c *gin.Context, name models.ModuleName) {
	c.JSON(http.StatusForbidden, gin.H{
		"code":   "MODULE_DISABLED",
		"error":  string(name) + " module is currently disabled",
		"module": name,
	})
	c.Abort()
}

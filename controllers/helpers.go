package controllers

import (
	"net/http"
	"strconv"

	"sewakos-backend/middleware"
	"sewakos-backend/models"

	"github.com/gin-gonic/gin"
)

// parseIDParam pulls a numeric :param or aborts with 400.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": name + " must be a positive number",
		})
		return 0, false
	}
	return uint(id), true
}

// mustCaller reads the authenticated caller; RequireAuth guarantees it is
// present, so a miss is a wiring bug and surfaces as 401.
func mustCaller(c *gin.Context) (models.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "authentication required",
		})
	}
	return caller, ok
}

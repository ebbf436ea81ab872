package utils

import (
	"sewakos-backend/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func OKMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "success", "message": message})
}

func Error(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{
		"status":  "error",
		"message": apperr.MessageOf(err),
	})
}

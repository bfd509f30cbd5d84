package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travigo/pkg/utils"
)

// bindJSON writes the error response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(c, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

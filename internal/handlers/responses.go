package handlers

import (
	"github.com/biztrack/biztrack_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes the uniform error envelope. The status inside the
// envelope always matches the HTTP response status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(status, message))
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardyware/ledger/internal/domain/dto"
	"github.com/ardyware/ledger/internal/logger"
)

// ErrorHandler is a last-resort net for errors attached to the Gin context
// via c.Error that no handler converted into a response. It logs them and,
// if nothing has been written yet, answers with a 500 in the standard error
// shape.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	last := c.Errors.Last().Err
	logger.L().Error().
		Err(last).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last))
	}
}

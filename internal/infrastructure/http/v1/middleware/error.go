package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insural/internal/core/apperror"
	"insural/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent responses.
// Plain not-found results answer with a bare 404 and no body; every other
// error gets the structured JSON shape. Internal details are logged, never
// exposed.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal error if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			// Missing records answer with an empty body.
			if appErr.Code == apperror.CodeNotFound {
				c.Status(http.StatusNotFound)
				return
			}

			c.JSON(appErr.HTTPStatus, gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
				"details": appErr.Details,
			})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    apperror.CodeInternal,
			"message": "Internal server error",
			"details": map[string]any{
				"request_id": c.GetString("request_id"),
			},
		})
	}
}

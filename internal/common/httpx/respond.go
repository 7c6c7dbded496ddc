package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/common/logger"
)

// AbortError writes the uniform {"error": message} body with the status the
// error code maps to. Storage and internal causes are logged, not leaked.
func AbortError(c *gin.Context, err error) {
	appErr := apperrors.From(err)

	message := appErr.Message
	switch appErr.Code {
	case apperrors.CodeStorage, apperrors.CodeInternal:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		message = "Internal server error"
	case apperrors.CodeExternalAPI:
		logger.Warn().Err(err).Str("path", c.FullPath()).Msg("Upstream call failed")
	}

	c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{"error": message})
}

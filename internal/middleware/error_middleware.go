package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrdirectory/internal/app/models/dto"
	"github.com/yigit/hrdirectory/internal/pkg/apperrors"
	"github.com/yigit/hrdirectory/internal/pkg/dberrors"
	"github.com/yigit/hrdirectory/internal/pkg/logger"
)

// HandleAPIError is the single place where errors become responses. Only a
// missing resource keeps its identity (404); every other failure is logged with
// its operation and store details and answered with the generic 500 body.
func HandleAPIError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		c.JSON(http.StatusNotFound, dto.NotFoundError())
		return
	}

	lgr := GetLogger(c, logger.Get())
	event := lgr.Error().Err(err).Str("operation", apperrors.Operation(err))
	if pgErr, ok := dberrors.AsPgError(err); ok {
		event = event.
			Str("sqlstate", pgErr.Code).
			Str("kind", string(dberrors.Classify(err))).
			Str("constraint", pgErr.ConstraintName)
	}
	if details := apperrors.Details(err); details != nil {
		event = event.Fields(details)
	}
	event.Msg("Request failed")

	c.JSON(http.StatusInternalServerError, dto.InternalError())
}

// Recovery turns a panic into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		lgr := GetLogger(c, logger.Get())
		lgr.Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalError())
	})
}

package handlers

import (
	"errors"
	"net/http"

	"roomly/config"
	"roomly/services/assistant"
	"roomly/services/booking"
	"roomly/services/employee"
	"roomly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service-layer error types onto the wire contract:
// validation 400, authorization 403, conflict 409 with the clashing record's
// public fields, not-found 404, everything else a generic 500. Raw dependency
// error text is echoed only outside production.
func respondServiceError(c *gin.Context, err error) {
	var (
		invalidID  employee.InvalidIDError
		unauth     employee.UnauthorizedError
		validation booking.ValidationError
		conflict   booking.ConflictError
		notFound   booking.NotFoundError
		notOwner   booking.UnauthorizedInviteError
	)

	switch {
	case errors.As(err, &invalidID):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": invalidID.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": validation.Error()})
	case errors.Is(err, assistant.ErrUnknownIntent):
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "Could not determine what you want to do. Try booking, cancelling, viewing or checking availability."})
	case errors.As(err, &unauth):
		c.JSON(http.StatusForbidden, gin.H{"status": "fail", "reason": unauth.Error()})
	case errors.As(err, &notOwner):
		c.JSON(http.StatusForbidden, gin.H{"status": "fail", "reason": notOwner.Error()})
	case errors.As(err, &conflict):
		resp := gin.H{"status": "fail", "reason": conflict.Reason}
		if conflict.Existing != nil {
			resp["existing_booking"] = conflict.Existing
		}
		c.JSON(http.StatusConflict, resp)
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "fail", "reason": notFound.Error()})
	default:
		utils.GetLogger().Error("operation failed", zap.Error(err))
		resp := gin.H{"status": "error", "reason": "An unexpected error occurred"}
		if !config.IsProduction() {
			resp["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

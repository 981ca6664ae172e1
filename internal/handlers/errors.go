// internal/handlers/errors.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratnasetu/marketplace-backend/internal/services"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

// respondServiceError maps pipeline error codes onto HTTP statuses. Anything
// without a code is an internal failure and the raw message stays server-side.
func respondServiceError(c *gin.Context, err error) {
	code := services.CodeOf(err)

	switch code {
	case services.ErrCodeNotFound:
		utils.ErrorResponse(c, http.StatusNotFound, string(code), err.Error(), nil)
	case services.ErrCodeAccessDenied:
		utils.ErrorResponse(c, http.StatusForbidden, string(code), err.Error(), nil)
	case services.ErrCodeValidationFailed:
		utils.ErrorResponse(c, http.StatusBadRequest, string(code), err.Error(), nil)
	case services.ErrCodeAllocationConflict, services.ErrCodeWriteConflict:
		utils.ErrorResponse(c, http.StatusConflict, string(code), err.Error(), nil)
	case services.ErrCodeStorageFailure:
		utils.ErrorResponse(c, http.StatusBadGateway, string(code), err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}

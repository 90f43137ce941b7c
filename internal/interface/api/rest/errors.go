package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/interface/api/rest/response"
)

// errorMappings is the single place a domain failure kind becomes an HTTP
// status and an outward wording. Anything outside the table renders as a
// generic 500.
var errorMappings = []struct {
	err     error
	status  int
	message string
	code    string
}{
	{domain.ErrNotFound, http.StatusNotFound, response.MsgUserNotFound, response.CodeNotFound},
	{domain.ErrEmailExists, http.StatusConflict, response.MsgEmailExists, response.CodeConflict},
	{domain.ErrEmailTaken, http.StatusConflict, response.MsgEmailTaken, response.CodeConflict},
	{domain.ErrInvalidOldPassword, http.StatusBadRequest, response.MsgInvalidOldPassword, response.CodeInvalidCredentials},
}

func mapDomainError(err error) (int, response.Error, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, response.Err(m.message, m.code), true
		}
	}
	return 0, response.Error{}, false
}

func internalError(exposeDetails bool, err error) response.Error {
	if exposeDetails {
		return response.ErrDetailed(response.MsgInternalError, response.CodeInternal, err.Error())
	}
	return response.Err(response.MsgInternalError, response.CodeInternal)
}

func badRequest(c *gin.Context, details any) {
	c.JSON(
		http.StatusBadRequest,
		response.ErrDetailed(response.MsgValidationFailed, response.CodeValidation, details),
	)
}

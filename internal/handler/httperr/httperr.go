package httperr

import (
	"net/http"

	"restaurant-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind maps engine error kinds to statuses. Client-side kinds carry
// the error text as detail; everything else is reported as an internal error.
func AbortWithKind(c *gin.Context, err error) {
	switch errs.Kind(err) {
	case errs.ErrInvalidArgument:
		AbortWithError(c, http.StatusBadRequest, err, "Invalid argument", err.Error())
	case errs.ErrNotFound:
		AbortWithError(c, http.StatusNotFound, err, "Not found", err.Error())
	case errs.ErrValidation:
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
	case errs.ErrVersionConflict:
		AbortWithError(c, http.StatusConflict, err, "Version conflict", err.Error())
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

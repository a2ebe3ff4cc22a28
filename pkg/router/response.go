package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
)

func renderError(gctx *gin.Context, err error) {
	var xerr errorx.Error
	if !errors.As(err, &xerr) {
		xerr = errorx.Unknown
	}

	gctx.AbortWithStatusJSON(httpStatus(xerr.Code), gin.H{
		"error": gin.H{
			"code":    xerr.Code,
			"message": xerr.Message,
		},
	})
}

func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	before := append([]MiddlewareFunc{}, router.before...)

	return func(gctx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = gctx.ShouldBindQuery(&req)
		case http.MethodPost:
			err = gctx.ShouldBindJSON(&req)
			// An empty body is a valid empty request.
			if errors.Is(err, io.EOF) {
				err = nil
			}
		}

		if err != nil {
			renderError(gctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
			return
		}

		ctx := router.base
		for _, middleware := range before {
			ctx, err = middleware(ctx, gctx.Request)
			if err != nil {
				renderError(gctx, err)
				return
			}
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Request %s failed: %v", gctx.FullPath(), err)
			renderError(gctx, err)
			return
		}

		gctx.JSON(http.StatusOK, gin.H{"data": resp})
	}
}

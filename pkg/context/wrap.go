package context

import (
	"Shelf/pkg/log"
	"Shelf/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxAdmin     = "admin"
	CtxRequestID = "request_id"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			var be *response.BizError
			if errors.As(err, &be) {
				if be.Code >= http.StatusInternalServerError {
					log.L.Error("request failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
				}
				response.Fail(c, be.Code, be.Msg, be.Data)
				return
			}
			log.L.Error("request failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			response.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

func GetAdmin(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxAdmin)
	if !ok {
		return "", errors.New("admin 不存在")
	}

	name, ok := v.(string)
	if !ok {
		return "", errors.New("admin 类型错误")
	}

	return name, nil
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}

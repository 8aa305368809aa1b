package handler

import (
	"Shelf/config"
	"Shelf/middleware"
	"Shelf/pkg/context"
	"Shelf/pkg/response"
	"Shelf/service"

	"github.com/gin-gonic/gin"
)

type Setting struct {
	Config         *config.Config
	SettingService service.ISettingService
}

func (h *Setting) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt)
	settings := r.Group("/v1/admin/settings", authorize)
	settings.GET("", context.Wrap(h.Index))
	settings.POST("", context.Wrap(h.Store))
}

func (h *Setting) Index(c *gin.Context) error {
	settings, err := h.SettingService.All(c.Request.Context())
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, settings)
	return nil
}

// Store 请求体为扁平的 key/value 对象，全部写入或全部失败
func (h *Setting) Store(c *gin.Context) error {
	values := make(map[string]any)
	if err := bindJSON(c, &values); err != nil {
		return err
	}
	if err := h.SettingService.SetMany(c.Request.Context(), values); err != nil {
		return toBizError(err)
	}
	settings, err := h.SettingService.All(c.Request.Context())
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, settings)
	return nil
}

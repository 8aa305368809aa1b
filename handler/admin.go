package handler

import (
	"net/http"

	"Shelf/config"
	"Shelf/middleware"
	"Shelf/pkg/context"
	"Shelf/pkg/response"
	"Shelf/service"
	"Shelf/types"

	"github.com/gin-gonic/gin"
)

type AdminAuth struct {
	AuthService service.IAuthService
}

func (h *AdminAuth) RegisterRouter(r gin.IRouter) {
	r.POST("/v1/admin/login", context.Wrap(h.Login))
}

func (h *AdminAuth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	res, err := h.AuthService.Login(c.Request.Context(), &req)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, res)
	return nil
}

// Admin 后台首页统计
type Admin struct {
	Config           *config.Config
	DashboardService service.IDashboardService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt)
	r.GET("/v1/admin/dashboard", authorize, context.Wrap(h.Dashboard))
	r.GET("/v1/admin/me", authorize, context.Wrap(h.Me))
}

// Me 返回当前 token 对应的管理员
func (h *Admin) Me(c *gin.Context) error {
	name, err := context.GetAdmin(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	response.Success(c, gin.H{"username": name})
	return nil
}

func (h *Admin) Dashboard(c *gin.Context) error {
	stats, err := h.DashboardService.Stats(c.Request.Context())
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, stats)
	return nil
}

package handler

import (
	"net/http"

	"Shelf/middleware"
	"Shelf/pkg/context"
	"Shelf/pkg/response"
	"Shelf/pkg/utils"
	"Shelf/service"

	"github.com/gin-gonic/gin"
)

// Storefront 前台只读接口
type Storefront struct {
	CatalogService service.ICatalogService
}

func (h *Storefront) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/home", context.Wrap(h.Home))
	r.GET("/v1/products", context.Wrap(h.List))
	r.GET("/v1/products/:slug", context.Wrap(h.Show))
}

// RegisterRedirect 短链跳转挂在根路由
func (h *Storefront) RegisterRedirect(r gin.IRouter) {
	r.GET("/go/:ref", context.Wrap(h.Outbound))
}

func (h *Storefront) Home(c *gin.Context) error {
	res, err := h.CatalogService.Home(c.Request.Context(), utils.QueryPage(c), c.Request.URL.Path)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, res)
	return nil
}

func (h *Storefront) List(c *gin.Context) error {
	page, err := h.CatalogService.PublicList(c.Request.Context(), utils.QueryPage(c), c.Request.URL.Path)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Storefront) Show(c *gin.Context) error {
	product, err := h.CatalogService.PublicProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Storefront) Outbound(c *gin.Context) error {
	link, err := h.CatalogService.Outbound(c.Request.Context(), c.Param("ref"))
	if err != nil {
		middleware.OutboundClicksTotal.WithLabelValues("miss").Inc()
		return toBizError(err)
	}
	middleware.OutboundClicksTotal.WithLabelValues("hit").Inc()
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, link)
	return nil
}

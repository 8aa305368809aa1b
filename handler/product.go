package handler

import (
	"net/http"

	"Shelf/config"
	"Shelf/middleware"
	"Shelf/pkg/context"
	"Shelf/pkg/response"
	"Shelf/pkg/utils"
	"Shelf/service"
	"Shelf/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	Config         *config.Config
	ProductService service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt)
	products := r.Group("/v1/admin/products", authorize)
	products.GET("", context.Wrap(h.List))
	products.POST("", context.Wrap(h.Create))
	products.GET("/:id", context.Wrap(h.Show))
	products.PUT("/:id", context.Wrap(h.Update))
	products.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Product) List(c *gin.Context) error {
	page, err := h.ProductService.AdminList(c.Request.Context(), utils.QueryPage(c), c.Request.URL.Path)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	var req types.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	product, err := h.ProductService.Create(c.Request.Context(), &req)
	if err != nil {
		return toBizError(err)
	}
	response.Created(c, product)
	return nil
}

func (h *Product) Show(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Delete(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		return toBizError(err)
	}
	c.Status(http.StatusNoContent)
	return nil
}

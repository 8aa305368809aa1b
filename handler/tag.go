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

type Tag struct {
	Config     *config.Config
	TagService service.ITagService
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Config.Jwt)
	tags := r.Group("/v1/admin/tags", authorize)
	tags.GET("", context.Wrap(h.List))
	tags.POST("", context.Wrap(h.Create))
	tags.GET("/:id", context.Wrap(h.Show))
	tags.PUT("/:id", context.Wrap(h.Update))
	tags.DELETE("/:id", context.Wrap(h.Delete))
}

// List ?all=1 返回不分页的全部标签，供商品表单选择
func (h *Tag) List(c *gin.Context) error {
	if c.Query("all") == "1" {
		tags, err := h.TagService.All(c.Request.Context())
		if err != nil {
			return toBizError(err)
		}
		response.Success(c, tags)
		return nil
	}
	page, err := h.TagService.AdminList(c.Request.Context(), utils.QueryPage(c), c.Request.URL.Path)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, page)
	return nil
}

func (h *Tag) Create(c *gin.Context) error {
	var req types.TagRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	tag, err := h.TagService.Create(c.Request.Context(), &req)
	if err != nil {
		return toBizError(err)
	}
	response.Created(c, tag)
	return nil
}

func (h *Tag) Show(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	tag, err := h.TagService.Get(c.Request.Context(), id)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, tag)
	return nil
}

func (h *Tag) Update(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req types.TagRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	tag, err := h.TagService.Update(c.Request.Context(), id, &req)
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, tag)
	return nil
}

func (h *Tag) Delete(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.TagService.Delete(c.Request.Context(), id); err != nil {
		return toBizError(err)
	}
	c.Status(http.StatusNoContent)
	return nil
}

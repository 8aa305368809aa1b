package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Shelf/pkg/response"
	"Shelf/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// toBizError 把 service 层错误映射为带 HTTP 状态的业务错误，未识别的原样返回由 Wrap 记 500
func toBizError(err error) error {
	if err == nil {
		return nil
	}
	if ve, ok := service.IsValidation(err); ok {
		return response.NewErrorWithData(http.StatusUnprocessableEntity, "The given data was invalid.", gin.H{"errors": ve.Fields})
	}
	if service.IsNotFound(err) {
		return response.NewError(http.StatusNotFound, err.Error())
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		return response.NewError(http.StatusUnauthorized, "These credentials do not match our records.")
	}
	return err
}

// bindJSON 解码请求体。字段类型不符时逐字段给出 422 校验错误，其余解码失败为 400
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindBodyWith(obj, binding.JSON)
	if err == nil {
		return nil
	}
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)
	if ve := service.FieldTypeErrors(raw, obj); ve.OrNil() != nil {
		return toBizError(ve)
	}
	return response.NewError(http.StatusBadRequest, "invalid request body")
}

// parseID 解析路径参数 :id
func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusNotFound, "resource not found")
	}
	return id, nil
}

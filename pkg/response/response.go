package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		Code: 0,
		Msg:  "created",
		Data: data,
	})
}

// Fail writes a business failure. Codes in the HTTP error range double as the
// response status, anything else is sent with 200.
func Fail(c *gin.Context, code int, msg string, data ...any) {
	resp := Response{Code: code, Msg: msg}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	c.JSON(HTTPStatus(code), resp)
}

func HTTPStatus(code int) int {
	if code >= http.StatusBadRequest && code < 600 {
		return code
	}
	return http.StatusOK
}

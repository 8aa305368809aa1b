package response

import (
	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
	Data any
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func NewErrorWithData(code int, msg string, data any) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
		Data: data,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
	})
}

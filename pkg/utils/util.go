package utils

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"strconv"

	"Shelf/pkg/paginate"

	"github.com/gin-gonic/gin"
	"github.com/speps/go-hashids/v2"
)

var ErrInvalidRef = errors.New("invalid ref")

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// HashID 把自增 ID 编码成对外分享用的短串
type HashID struct {
	h *hashids.HashID
}

func NewHashID(salt string, minLength int) (*HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = minLength
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &HashID{h: h}, nil
}

func (h *HashID) Encode(id uint64) string {
	e, _ := h.h.EncodeInt64([]int64{int64(id)})
	return e
}

func (h *HashID) Decode(ref string) (uint64, error) {
	ids, err := h.h.DecodeInt64WithError(ref)
	if err != nil || len(ids) != 1 || ids[0] <= 0 {
		return 0, ErrInvalidRef
	}
	return uint64(ids[0]), nil
}

// QueryPage 读取 ?page=，非法值按第一页处理，过大的页码截断到 paginate.MaxPage
func QueryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return paginate.Normalize(page)
}

// Package response defines the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"supercut/pkg/errors"
)

type R struct {
	Error int32  `json:"error"`
	Msg   string `json:"msg"`
	Data  any    `json:"data"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, R{
		Error: 0,
		Msg:   "Success",
		Data:  data,
	})
}

func Error(c *gin.Context, code int32, msg string) {
	c.JSON(http.StatusOK, R{
		Error: code,
		Msg:   msg,
		Data:  nil,
	})
}

// ErrorResponse maps an application error onto the envelope. Unknown errors
// keep their text but report the generic code.
func ErrorResponse(c *gin.Context, err error) {
	c.JSON(http.StatusOK, R{
		Error: int32(errors.GetCode(err)),
		Msg:   errors.GetMessage(err),
		Data:  nil,
	})
}

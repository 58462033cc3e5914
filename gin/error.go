package gin

import (
	"errors"
	"net/http"

	"github.com/fwojciec/nicobar"
	"github.com/gin-gonic/gin"
)

// errorBody is the JSON body of untagged errors. It mirrors the "type" and
// "message" fields of the tagged errors.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// writeError answers with the tagged error as the body. Internal errors are
// 500, request validation errors are 400, and everything else uses the
// route's fallback status.
func writeError(c *gin.Context, err error, fallback int) {
	_ = c.Error(err)

	status := fallback
	switch code := nicobar.ErrorCode(err); {
	case code == nicobar.EINTERNAL:
		status = http.StatusInternalServerError
	case code == nicobar.EINVALID && nicobar.KindOf(err) == "":
		status = http.StatusBadRequest
	}

	var k nicobar.Kinded
	if errors.As(err, &k) {
		c.JSON(status, k)
		return
	}
	c.JSON(status, errorBody{Type: nicobar.ErrorCode(err), Message: nicobar.ErrorMessage(err)})
}

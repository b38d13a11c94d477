package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathUint parses a numeric path parameter. On failure it writes a 400
// response and returns false.
func pathUint(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid " + name})
		return 0, false
	}
	return uint(value), true
}

// queryPage reads the page and page_size query parameters. Values the
// services consider out of range are normalized there.
func queryPage(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// queryInt reads an integer query parameter with a fallback.
func queryInt(ctx *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return fallback
	}
	return value
}

package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// GetPaginationParams reads limit/offset query params with sane defaults.
// Limit is clamped so a single listing cannot sweep the whole table.
func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		return 0, 0, err
	}
	if limit < 1 || limit > maxPageSize {
		limit = maxPageSize
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, err
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset, nil
}

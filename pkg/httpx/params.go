package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseIDParam — читает числовой path-параметр. false при пустом,
// нечисловом или неположительном значении.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

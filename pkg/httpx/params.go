package httpx

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrBadID — параметр пути не является положительным целым id.
var ErrBadID = errors.New("invalid id parameter")

// ParseIDParam — читает целочисленный id из параметра пути.
// Принимаются только положительные значения.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadID
	}
	return id, nil
}

package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ParseUintQuery parses an optional positive integer query parameter.
// Returns (0, nil) when absent.
func ParseUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

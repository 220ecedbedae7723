package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/interfaces/http/middleware"
)

// actorUserID reads the authenticated user ID the auth middleware stored.
func actorUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

func actorUsername(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextKeyUsername)
	name, _ := v.(string)
	return name
}

func actorRoles(c *gin.Context) []string {
	v, _ := c.Get(middleware.ContextKeyRoles)
	roles, _ := v.([]string)
	return roles
}

// actorStaffID is nil for accounts without a staff record.
func actorStaffID(c *gin.Context) *uint {
	v, exists := c.Get(middleware.ContextKeyStaffID)
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

// parsePage reads page/page_size query parameters with zero defaults; the
// use cases apply their own bounds.
func parsePage(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	return page, pageSize
}

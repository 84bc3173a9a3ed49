package httpserver

import "github.com/gin-gonic/gin"

const (
	ctxUserID = "ns.userID"
	ctxStaff  = "ns.staff"
)

// setIdentity stores the authenticated user in the request context.
func setIdentity(c *gin.Context, userID int64, staff bool) {
	c.Set(ctxUserID, userID)
	c.Set(ctxStaff, staff)
}

// identity fetches the authenticated user from the request context.
func identity(c *gin.Context) (userID int64, staff, ok bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false, false
	}
	id, isInt := v.(int64)
	if !isInt {
		return 0, false, false
	}
	return id, c.GetBool(ctxStaff), true
}

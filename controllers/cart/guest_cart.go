package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GuestOwner keys the cart on the guest_id issued by POST /auth/guest.
// Guest cart routes are public; the id in the query string is the only
// handle a guest device has.
func GuestOwner(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}

package middleware

import "github.com/gin-gonic/gin"

// ownerIDKey is the key used to store the authenticated tenant's owner ID.
// Using a custom type prevents collisions.
const ownerIDKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the tenant owner ID from the Gin context.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	ownerIDVal, exists := c.Get(string(ownerIDKey))
	if !exists {
		// check in the request context as well
		if v := c.Request.Context().Value(ownerIDKey); v != nil {
			return v.(string), true
		}
		return "", false
	}

	ownerID, ok := ownerIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly.
		return "", false
	}

	return ownerID, true
}

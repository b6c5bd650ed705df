package response

import (
	"github.com/gin-gonic/gin"
)

// Bodies follow the wire contract of the auth API: flat JSON objects with
// a success flag and a human-readable message, plus endpoint-specific fields
// added by the handlers.

// Fail writes a {success:false, message} body with the given status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// AbortFail aborts the request chain with a {success:false, message} body.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// Note writes a bare {message} body, used by endpoints that predate the
// success-flag convention.
func Note(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// AbortNote aborts the request chain with a bare {message} body.
func AbortNote(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"message": message})
}

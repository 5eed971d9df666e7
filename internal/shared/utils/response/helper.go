package response

import "github.com/gin-gonic/gin"

// JSON writes a success payload as-is.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error writes the uniform {"error": message} payload.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// AbortWithError writes the error payload and stops the handler chain.
// Used by middleware so downstream handlers never see the request.
func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

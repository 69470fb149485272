package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// service version reported by the health check
const Version = "1.0.0"

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: "foodmap-devapi",
		Version: Version,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the failure with full detail and answers with a
// generic message only.
func internalError(c *gin.Context, op string, err error) {
	reqID, _ := c.Get("requestID")
	log.Printf("internal error [%v] %s: %v", reqID, op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

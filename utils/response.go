package utils

import "github.com/gin-gonic/gin"

// Mobile clients consume the payload directly: success responses are the bare
// JSON document, failures are {"error": "<message>"} with the HTTP status
// carrying the class of failure. There is no code/message envelope.

// JSON writes a success payload.
func JSON(ctx *gin.Context, status int, payload interface{}) {
	ctx.JSON(status, payload)
}

// Fail writes the error envelope.
func Fail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The dashboard and storefront consume entity payloads directly, so success
// bodies are the raw value and error bodies are plain text. No envelope.

func JSON(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func OK(ctx *gin.Context, data any) {
	JSON(ctx, http.StatusOK, data)
}

// Null writes a literal JSON null with 200, used when a lookup finds nothing.
func Null(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte("null"))
}

// Count reports how many rows a delete removed.
func Count(ctx *gin.Context, n int64) {
	ctx.JSON(http.StatusOK, gin.H{"count": n})
}

func Text(ctx *gin.Context, status int, message string) {
	ctx.String(status, message)
}

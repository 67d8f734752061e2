package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jba/hufftext/internal/handler"
)

type Dependencies struct {
	CompressHandler *handler.CompressHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/encode", d.CompressHandler.Encode)
		v1.POST("/decode", d.CompressHandler.Decode)
		v1.POST("/table", d.CompressHandler.Table)
		v1.POST("/stat", d.CompressHandler.Stat)
	}
}

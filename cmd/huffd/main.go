// Command huffd serves hufftext encoding and decoding over HTTP.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/jba/hufftext/internal/config"
	"github.com/jba/hufftext/internal/handler"
	"github.com/jba/hufftext/internal/logger"
	"github.com/jba/hufftext/internal/router"
	"github.com/jba/hufftext/internal/service"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	svc, err := service.NewCompressor(logg)
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()
	h := handler.NewCompressHandler(svc, cfg.MaxBody)

	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	router.Register(r, router.Dependencies{
		CompressHandler: h,
	})

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

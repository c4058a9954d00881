package handler

import (
	"net/http"

	"floodwatch/internal/config"
	"floodwatch/internal/middleware"
	"floodwatch/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg config.ServerConfig, flood *FloodHandler, ask *AskHandler) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), cors.New(corsConfig(cfg.AllowOrigins)))
	r.SetHTMLTemplate(tmpl)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/flood") })
	r.StaticFS("/static", web.Static())

	r.GET("/flood", flood.Page)
	r.POST("/flood", flood.Submit)
	r.GET("/ask", ask.Page)
	r.POST("/ask", ask.Submit)

	api := r.Group("/api")
	api.POST("/predict", flood.API)
	api.POST("/ask", ask.API)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

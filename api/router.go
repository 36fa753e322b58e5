package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery(), requestLogger(), service.corsMiddleware())

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.POST(ParseURL, service.parseMarkup)

	router.POST(DocumentsURL, service.createDocument)
	router.GET(DocumentsURL, service.listDocuments)

	documentGroup := router.Group(DocumentsURL).Use(service.documentIDMiddleware())
	documentGroup.GET("/:document_id", service.getDocument)

	server.Handler = router
	service.router = router
}

package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Category *CategoryHandler
	Product  *ProductHandler
	Tag      *TagHandler
	Health   *HealthHandler
}

// NewRouter mounts the resource routes under /api and the health check at
// the root.
func NewRouter(logger *logrus.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))

	router.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound, "Route not found")
	})

	h.Health.RegisterRoutes(router)

	api := router.Group("/api")
	h.Category.RegisterRoutes(api)
	h.Product.RegisterRoutes(api)
	h.Tag.RegisterRoutes(api)
	return router
}

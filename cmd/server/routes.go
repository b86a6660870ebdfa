package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gatehouse-app/gatehouse/internal/db"
	"github.com/gatehouse-app/gatehouse/internal/http/api"
	siteapi "github.com/gatehouse-app/gatehouse/internal/http/api/site/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, store db.Store, sessionMiddleware gin.HandlerFunc, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/",
		Middleware: []gin.HandlerFunc{sessionMiddleware},
	},
		siteapi.SiteModule(store),
	)
}

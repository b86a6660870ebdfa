package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gatehouse-app/gatehouse/internal/auth"
	"github.com/gatehouse-app/gatehouse/internal/db"
	"github.com/gatehouse-app/gatehouse/internal/http/api"
	"github.com/gatehouse-app/gatehouse/internal/http/middleware"
)

// SiteModule mounts the landing page, the auth actions and the profile view.
func SiteModule(store db.Store) api.Module {
	ctl := newSiteController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/", ctl.index)
		c.POST("/login", ctl.login)
		c.POST("/registration", ctl.registration)
		c.GET("/profile", ctl.profile)
		c.GET("/logout", ctl.logout)
	})
}

type SiteController struct {
	store db.Store
}

func newSiteController(store db.Store) *SiteController {
	return &SiteController{store: store}
}

// GET /
// Consuming the flashes saves the session, so even never-authenticated
// visitors get a session cookie on first contact.
func (s *SiteController) index(ctx *gin.Context) {
	_, name, loggedIn := auth.Current(ctx)
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"LoggedIn":           loggedIn,
		"Name":               name,
		"LoginErrors":        middleware.ConsumeFlashes(ctx, middleware.CategoryLoginErrors),
		"RegistrationErrors": middleware.ConsumeFlashes(ctx, middleware.CategoryRegistrationErrors),
	})
}

// GET /profile
func (s *SiteController) profile(ctx *gin.Context) {
	userID, name, ok := auth.Current(ctx)
	if !ok {
		log.Info().Msg("profile requested without an authenticated session")
		middleware.Flash(ctx, middleware.CategoryLoginErrors, "Session timed out.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}
	ctx.HTML(http.StatusOK, "profile.html", gin.H{
		"UserID": userID,
		"Name":   name,
	})
}

// GET /logout
func (s *SiteController) logout(ctx *gin.Context) {
	if err := auth.Logout(ctx); err != nil {
		log.Error().Err(err).Msg("failed to destroy session")
	}
	ctx.Redirect(http.StatusFound, "/")
}

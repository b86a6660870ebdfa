package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gatehouse-app/gatehouse/internal/auth"
	"github.com/gatehouse-app/gatehouse/internal/db"
	"github.com/gatehouse-app/gatehouse/internal/http/api/site/packets"
	"github.com/gatehouse-app/gatehouse/internal/http/middleware"
	"github.com/gatehouse-app/gatehouse/internal/model"
)

// POST /login
// Every failure resolves to the same generic message so the response does
// not distinguish an unknown email from a wrong password.
func (s *SiteController) login(ctx *gin.Context) {
	var form packets.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.Flash(ctx, middleware.CategoryLoginErrors, "User credentials not found or invalid!")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	foundUser, err := s.store.GetUserByEmail(form.Email)
	if err != nil || foundUser == nil || !auth.CheckPassword(foundUser.HashedPassword, form.Password) {
		log.Info().Str("email", form.Email).Msg("login failed")
		middleware.Flash(ctx, middleware.CategoryLoginErrors, "User credentials not found or invalid!")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	if err := auth.Login(ctx, foundUser); err != nil {
		log.Error().Err(err).Msg("failed to save session on login")
		middleware.Flash(ctx, middleware.CategoryLoginErrors, "User credentials not found or invalid!")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	s.renderProfile(ctx, foundUser.ID, foundUser.FirstName)
}

// POST /registration
func (s *SiteController) registration(ctx *gin.Context) {
	var form packets.RegistrationForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Error processing registration.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	// the match check runs before any field validation, matching the
	// order the messages are surfaced in
	if form.Password != form.PasswordConfirm {
		middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Passwords do not match!")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	if messages := form.Validate(); len(messages) > 0 {
		for _, message := range messages {
			middleware.Flash(ctx, middleware.CategoryRegistrationErrors, message)
		}
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	hashed, err := auth.HashPassword(form.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Error processing registration.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	birthDate, err := form.ParseBirthDate()
	if err != nil {
		middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Birth Date: must be a valid date.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	newID, err := s.store.CreateUser(form.FirstName, form.LastName, form.Email, birthDate, hashed)
	if err != nil {
		if errors.Is(err, db.ErrEmailTaken) {
			middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Email is already taken!")
		} else {
			log.Error().Err(err).Msg("failed to create user")
			middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Error processing registration.")
		}
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	if err := auth.Login(ctx, &model.User{ID: newID, FirstName: form.FirstName}); err != nil {
		log.Error().Err(err).Msg("failed to save session on registration")
		middleware.Flash(ctx, middleware.CategoryRegistrationErrors, "Error processing registration.")
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	s.renderProfile(ctx, newID, form.FirstName)
}

func (s *SiteController) renderProfile(ctx *gin.Context, userID int, name string) {
	ctx.HTML(http.StatusOK, "profile.html", gin.H{
		"UserID": userID,
		"Name":   name,
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"corvaxlab/internal/http/middleware"
	"corvaxlab/internal/repository"
	"corvaxlab/internal/service"

	"github.com/gin-gonic/gin"
)

// sessionTTL is the cookie lifetime in seconds, matching the JWT expiry.
const sessionTTL = 7 * 24 * 60 * 60

// Callback handles the Telegram Login Widget redirect. The widget appends
// the user fields and an HMAC hash as query parameters.
func (h *Handler) Callback(c *gin.Context) {
	values := c.Request.URL.Query()

	idStr := values.Get("id")
	if idStr == "" || values.Get("hash") == "" || values.Get("auth_date") == "" {
		c.String(http.StatusBadRequest, "missing Telegram login data")
		return
	}

	if !service.ValidateTelegramLogin(values, h.Cfg.BotToken) {
		c.String(http.StatusForbidden, "invalid hash")
		return
	}

	tgID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "bad user id")
		return
	}

	userRepo := repository.NewUserRepository(h.DB)
	user, err := userRepo.GetOrCreate(c.Request.Context(), tgID, values.Get("first_name"))
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionTTL, "/", "", true, true)
	c.Redirect(http.StatusFound, h.Cfg.FrontendURL)
}

// DevLogin issues a session for an arbitrary tg id without HMAC validation.
// Registered only when DEV_MODE=true.
func (h *Handler) DevLogin(c *gin.Context) {
	var tgID int64 = 12345
	if v := c.Query("id"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			tgID = parsed
		}
	}

	userRepo := repository.NewUserRepository(h.DB)
	user, err := userRepo.GetOrCreate(c.Request.Context(), tgID, "Test")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := service.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, sessionTTL, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": user.ID})
}

// Whoami reports login status without requiring a session.
func (h *Handler) Whoami(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	userID, err := service.ParseJWT(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	user, err := h.StateService.User(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loggedIn":  true,
		"userId":    user.ID,
		"firstName": user.FirstName,
	})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"loggedIn": false})
}

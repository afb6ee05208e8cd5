package controllers

import (
	"errors"
	"net/http"
	"time"

	"bridges/internal/models/request_models"
	"bridges/internal/services"
	"bridges/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AccountController struct {
	authService services.AuthServiceInterface
	cookie      CookieConfig
}

func NewAccountController(authService services.AuthServiceInterface, cookie CookieConfig) *AccountController {
	return &AccountController{
		authService: authService,
		cookie:      cookie,
	}
}

func (a *AccountController) LoginForm(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.html", gin.H{"Title": "Login"})
}

// Login marks the session as editor and goes home; bad credentials re-render
// the form with the same message whatever was wrong.
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		a.loginFailed(c, http.StatusBadRequest)
		return
	}

	sessionID, err := a.authService.Login(c.Request.Context(), req)
	if errors.Is(err, utils.ErrInvalidCredentials) {
		a.loginFailed(c, http.StatusUnauthorized)
		return
	}
	if err != nil {
		renderError(c, err)
		return
	}

	// the session the browser held before is replaced, not kept alongside
	if previous, err := c.Cookie(a.cookie.Name); err == nil && previous != "" && previous != sessionID {
		if err := a.authService.Logout(c.Request.Context(), previous); err != nil {
			_ = c.Error(err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.Name, sessionID, int(a.cookie.TTL.Seconds()), "/", "", a.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

func (a *AccountController) loginFailed(c *gin.Context, code int) {
	renderPage(c, code, "login.html", gin.H{
		"Title": "Login",
		"Error": "Invalid username or password",
	})
}

// Logout always clears the cookie, even when the stored session is gone.
func (a *AccountController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(a.cookie.Name); err == nil {
		if err := a.authService.Logout(c.Request.Context(), sessionID); err != nil {
			_ = c.Error(err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.cookie.Name, "", -1, "/", "", a.cookie.Secure, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// IssueToken godoc
// @Summary Issue an editor API token
// @Description Exchange the editor credential for a bearer token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.TokenResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/token [post]
func (a *AccountController) IssueToken(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.authService.IssueToken(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Token issued successfully")
}

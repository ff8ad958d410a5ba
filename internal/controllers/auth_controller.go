package controllers

import (
	"errors"
	"net/http"

	"recipe-auth/internal/logging"
	"recipe-auth/internal/models"
	"recipe-auth/internal/service"

	"github.com/gin-gonic/gin"
)

const msgConnected = "Backend connection successful"

// clientMessages is the text shown to the frontend for each domain failure.
var clientMessages = map[error]string{
	service.ErrEmailInUse:         "Error: Email is already in use!",
	service.ErrPasswordMismatch:   "Error: Passwords do not match!",
	service.ErrPasswordTooLong:    "Error: Password is too long!",
	service.ErrInvalidCredentials: "Error: Invalid email or password!",
}

type AuthController struct {
	authService service.AuthService
	log         logging.Logger
}

func NewAuthController(authService service.AuthService, log logging.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		log:         log.With("component", "auth_controller"),
	}
}

// Register wires the auth endpoints under the given group.
func (ac *AuthController) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", ac.Signup)
	rg.POST("/signin", ac.Signin)
	rg.GET("/test", ac.Test)
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: bindingMessage(err)})
		return
	}

	response, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		ac.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Signin handles POST /api/auth/signin
func (ac *AuthController) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: bindingMessage(err)})
		return
	}

	response, err := ac.authService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		ac.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Test handles GET /api/auth/test
func (ac *AuthController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: msgConnected})
}

// fail maps known domain errors to 400 and hides everything else behind a 500.
func (ac *AuthController) fail(c *gin.Context, err error) {
	for target, msg := range clientMessages {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: msg})
			return
		}
	}

	ac.log.Error(c.Request.Context(), "auth request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Error: Internal server error"})
}

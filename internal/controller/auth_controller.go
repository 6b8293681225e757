package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register an admin
// @Description Creates an admin account. Requires the server's registration key.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterDTO true "Email, password and registration key"
// @Success 201 {object} dto.AdminResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Wrong registration key"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterDTO
	if !BindJSON(ctx, &req) {
		return
	}
	admin, err := c.authService.Register(req)
	if err != nil {
		RespondError(ctx, err, "Failed to register admin")
		return
	}
	ctx.JSON(http.StatusCreated, admin)
}

// Login godoc
// @Summary Admin login
// @Description Exchanges email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDTO true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if !BindJSON(ctx, &req) {
		return
	}
	token, err := c.authService.Login(req)
	if err != nil {
		RespondError(ctx, err, "Login failed")
		return
	}
	ctx.JSON(http.StatusOK, token)
}

// ForgotPassword godoc
// @Summary Request a password reset token
// @Description Answers identically whether or not the email is registered. Only when SERVER_MODE=debug is the reset token of an existing account included, for local testing without mail delivery; this reveals which emails exist.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.ForgotPasswordDTO true "Account email"
// @Success 200 {object} dto.ForgotPasswordResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordDTO
	if !BindJSON(ctx, &req) {
		return
	}
	resp, err := c.authService.ForgotPassword(req)
	if err != nil {
		RespondError(ctx, err, "Failed to process password reset request")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Reset a password
// @Description Sets a new password using a reset token. Each token works once.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.ResetPasswordDTO true "Reset token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid, expired or used token"
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordDTO
	if !BindJSON(ctx, &req) {
		return
	}
	if err := c.authService.ResetPassword(ctx.Request.Context(), req); err != nil {
		RespondError(ctx, err, "Failed to reset password")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset successfully. You can now login with your new password."})
}

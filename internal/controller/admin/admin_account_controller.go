package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/auth"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
)

type AdminAccountController struct {
	authService service.AuthService
}

func NewAdminAccountController(authService service.AuthService) *AdminAccountController {
	return &AdminAccountController{authService: authService}
}

// Me godoc
// @Summary (Admin) Current admin
// @Description Returns the identity carried by the bearer token.
// @Tags Admin - Account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /admin/me [get]
func (c *AdminAccountController) Me(ctx *gin.Context) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminResponse{ID: claims.AdminID, Email: claims.Email})
}

// ChangePassword godoc
// @Summary (Admin) Change password
// @Tags Admin - Account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ChangePasswordDTO true "Current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Current password is incorrect"
// @Router /admin/password [post]
func (c *AdminAccountController) ChangePassword(ctx *gin.Context) {
	claims := auth.ClaimsFromContext(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Not authenticated"})
		return
	}
	var req dto.ChangePasswordDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.authService.ChangePassword(claims.AdminID, req); err != nil {
		controller.RespondError(ctx, err, "Failed to change password")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

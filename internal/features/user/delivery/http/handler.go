package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coincoast/memesboost-backend/internal/common/httpx"
	"github.com/coincoast/memesboost-backend/internal/features/user/models"
	"github.com/coincoast/memesboost-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	router.POST("/users", h.Register)
	router.POST("/boost", h.Boost)

	admin := router.Group("/users")
	admin.Use(requireAdmin)
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}

// @Summary Register a wallet
// @Description Register a new wallet or refresh an existing one's X profile. Registration is idempotent per wallet; points are never reset. New wallets are rejected once the population cap is reached.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Wallet and X profile"
// @Success 201 {object} models.UserWithTasks "Registered user"
// @Failure 400 {object} models.ErrorResponse "Missing fields"
// @Failure 403 {object} models.ErrorResponse "User limit reached"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.WalletAddress, req.XProfile)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary Boost
// @Description Award one point to the user, at most once per cooldown window.
// @Tags users
// @Accept json
// @Produce json
// @Param boost body models.BoostRequest true "User id"
// @Success 200 {object} models.BoostResponse "Updated score"
// @Failure 400 {object} models.ErrorResponse "Throttled or invalid request"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /boost [post]
func (h *UserHandler) Boost(c *gin.Context) {
	var req models.BoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Boost(c.Request.Context(), req.UserID)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List users
// @Description List all registered users with their completed task ids (admin only).
// @Tags users
// @Produce json
// @Security AdminToken
// @Success 200 {array} models.UserWithTasks "Users"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Delete a user
// @Description Delete a user and, via cascade, their completion records (admin only).
// @Tags users
// @Produce json
// @Security AdminToken
// @Param id path int true "User ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

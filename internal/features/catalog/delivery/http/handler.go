package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coincoast/memesboost-backend/internal/common/httpx"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/models"
	"github.com/coincoast/memesboost-backend/internal/features/catalog/service"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	router.GET("/listings", h.List)

	admin := router.Group("/listings")
	admin.Use(requireAdmin)
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
	}
}

// @Summary List a catalog section
// @Description List one promoted section ordered by display position.
// @Tags listings
// @Produce json
// @Param section query string true "Section" Enums(tokens, communities, airdrops)
// @Success 200 {array} models.Listing "Listings"
// @Failure 400 {object} models.ErrorResponse "Unknown section"
// @Router /listings [get]
func (h *CatalogHandler) List(c *gin.Context) {
	section := models.Section(c.Query("section"))

	listings, err := h.service.List(c.Request.Context(), section)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// @Summary Create a listing
// @Description Add an entry to a promoted section (admin only). Token and community entries are enriched with live market figures from the token feed; airdrop entries carry their metadata inline.
// @Tags listings
// @Accept json
// @Produce json
// @Security AdminToken
// @Param listing body models.CreateListingRequest true "Listing definition"
// @Success 201 {object} models.Listing "Created listing"
// @Failure 400 {object} models.ErrorResponse "Missing fields"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 502 {object} models.ErrorResponse "Token feed unavailable"
// @Router /listings [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req models.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	listing, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// @Summary Delete a listing
// @Description Remove an entry from the catalog (admin only).
// @Tags listings
// @Produce json
// @Security AdminToken
// @Param id path int true "Listing ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Listing not found"
// @Router /listings/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

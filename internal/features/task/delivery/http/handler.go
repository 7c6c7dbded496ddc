package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coincoast/memesboost-backend/internal/common/httpx"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	"github.com/coincoast/memesboost-backend/internal/features/task/service"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{
		service: service,
	}
}

func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	tasks := router.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("/complete", h.Complete)
	}

	admin := router.Group("/tasks")
	admin.Use(requireAdmin)
	{
		admin.POST("", h.Create)
		admin.DELETE("/:id", h.Delete)
		admin.PATCH("/:id/toggle", h.Toggle)
	}
}

// @Summary List active tasks
// @Description List tasks currently shown to visitors. Inactive tasks are hidden.
// @Tags tasks
// @Produce json
// @Success 200 {array} models.Task "Active tasks"
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// @Summary Create a task
// @Description Create a social task worth a fixed point value (admin only). New tasks start active.
// @Tags tasks
// @Accept json
// @Produce json
// @Security AdminToken
// @Param task body models.CreateTaskRequest true "Task definition"
// @Success 201 {object} models.Task "Created task"
// @Failure 400 {object} models.ErrorResponse "Missing fields or non-positive points"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := h.service.Create(c.Request.Context(), req.Description, req.Link, req.Points)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// @Summary Delete a task
// @Description Delete a task and, via cascade, its completion records (admin only).
// @Tags tasks
// @Produce json
// @Security AdminToken
// @Param id path int true "Task ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Toggle a task
// @Description Show or hide a task on the public listing (admin only).
// @Tags tasks
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path int true "Task ID"
// @Param toggle body models.ToggleRequest true "Desired state"
// @Success 200 {object} models.ToggleResponse "New state"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Task not found"
// @Router /tasks/{id}/toggle [patch]
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	if err := h.service.Toggle(c.Request.Context(), id, *req.IsActive); err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ToggleResponse{ID: id, IsActive: *req.IsActive})
}

// @Summary Complete a task
// @Description Record a task completion for a user and award the task's stored point value. Replays of the same pair return the unchanged score. Any client-supplied task_points value is ignored.
// @Tags tasks
// @Accept json
// @Produce json
// @Param completion body models.CompleteRequest true "User and task ids"
// @Success 200 {object} models.CompleteResponse "Score and completed task ids"
// @Failure 400 {object} models.ErrorResponse "Missing ids"
// @Failure 404 {object} models.ErrorResponse "User or task not found"
// @Router /tasks/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	var req models.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Complete(c.Request.Context(), req.UserID, req.TaskID)
	if err != nil {
		httpx.AbortError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

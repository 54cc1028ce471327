package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"neurotask/internal/auth"
	"neurotask/internal/domain"
	"neurotask/internal/repository"
	"neurotask/internal/schedule"
	"neurotask/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	tasks  service.TaskService
	notify service.NotifyService
	tokens *auth.TokenManager
}

func NewHandler(users service.UserService, tasks service.TaskService, notify service.NotifyService, tokens *auth.TokenManager) *Handler {
	return &Handler{
		users:  users,
		tasks:  tasks,
		notify: notify,
		tokens: tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		authed := api.Group("")
		authed.Use(h.requireAuth())
		{
			authed.GET("/me", h.me)
			authed.PATCH("/me/theme", h.updateTheme)
			authed.DELETE("/me", h.deleteAccount)

			authed.POST("/tasks", h.createTask)
			authed.GET("/tasks", h.listTasks)
			authed.PATCH("/tasks/:id", h.updateTask)
			authed.DELETE("/tasks/:id", h.deleteTask)

			authed.POST("/notifications/check", h.checkNotifications)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

const userIDKey = "userID"

func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		userID, err := h.tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userToResponse(user)})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userToResponse(user)})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

func (h *Handler) updateTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.users.UpdateTheme(c.Request.Context(), currentUserID(c), req.Theme); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}

func (h *Handler) deleteAccount(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": currentUserID(c)})
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Kind        string `json:"type"`
	Priority    string `json:"priority"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := &domain.Task{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Kind:        domain.TaskKind(req.Kind),
		Priority:    domain.TaskPriority(req.Priority),
	}

	created, err := h.tasks.Create(c.Request.Context(), task)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*created))
}

func (h *Handler) listTasks(c *gin.Context) {
	priority := c.DefaultQuery("priority", schedule.FilterAll)
	kind := c.DefaultQuery("type", schedule.FilterAll)
	strategy := schedule.Strategy(c.DefaultQuery("sort", string(schedule.StrategyPriority)))

	if !schedule.ValidPriorityFilter(priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority filter"})
		return
	}
	if !schedule.ValidKindFilter(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid type filter"})
		return
	}
	if !schedule.ValidStrategy(strategy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort strategy"})
		return
	}

	tasks, err := h.tasks.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	ordered := schedule.Sort(schedule.Filter(tasks, priority, kind), strategy)

	resp := make([]TaskResponse, len(ordered))
	for i := range ordered {
		resp[i] = taskToResponse(ordered[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": resp,
		"stats": statsFor(tasks),
	})
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Kind        *string `json:"type"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

func (h *Handler) updateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := repository.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
	if req.Kind != nil {
		kind := domain.TaskKind(*req.Kind)
		upd.Kind = &kind
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		upd.Priority = &priority
	}

	task, err := h.tasks.Update(c.Request.Context(), currentUserID(c), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) checkNotifications(c *gin.Context) {
	notifications, err := h.notify.Check(c.Request.Context(), currentUserID(c), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = NotificationResponse{
			ID:      n.ID,
			TaskID:  n.TaskID,
			Title:   n.Title,
			Message: n.Message,
		}
	}
	c.JSON(http.StatusOK, gin.H{"notifications": resp})
}

func taskID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrUserAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Theme     string `json:"theme,omitempty"`
	CreatedAt string `json:"created_at"`
}

type TaskResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date,omitempty"`
	Kind        string `json:"type"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type NotificationResponse struct {
	ID      string `json:"id"`
	TaskID  int64  `json:"task_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type TaskStats struct {
	Pending      int `json:"pending"`
	Completed    int `json:"completed"`
	HighPriority int `json:"high_priority"`
}

func statsFor(tasks []domain.Task) TaskStats {
	var stats TaskStats
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if task.EffectivePriority() == domain.TaskPriorityHigh {
			stats.HighPriority++
		}
	}
	return stats
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Theme:     user.Theme,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Kind:        string(task.Kind),
		// Display-time default: storage may hold no priority at all.
		Priority:  string(task.EffectivePriority()),
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}
}

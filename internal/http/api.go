package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wirawat444/web-sc-linkhub/internal/auth"
	"github.com/Wirawat444/web-sc-linkhub/internal/domain"
	"github.com/Wirawat444/web-sc-linkhub/internal/service"
	"github.com/Wirawat444/web-sc-linkhub/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	profiles service.ProfileService
	links    service.LinkService
	gate     auth.Gate
	storage  storage.Service
	logger   *logrus.Logger
}

func NewHandler(
	users service.UserService,
	profiles service.ProfileService,
	links service.LinkService,
	gate auth.Gate,
	store storage.Service,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:    users,
		profiles: profiles,
		links:    links,
		gate:     gate,
		storage:  store,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		authed := api.Group("", h.requireSession())
		{
			authed.GET("/user/profile", h.getProfile)
			authed.PUT("/user/profile", h.updateProfile)
			authed.POST("/user/avatar", h.uploadAvatar)
			authed.GET("/link", h.listLinks)
			authed.POST("/link", h.createLink)
			authed.PUT("/link/:id", h.updateLink)
			authed.DELETE("/link/:id", h.deleteLink)
		}
	}

	h.registerPages(router)
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

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := h.gate.Issue(auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := h.gate.Issue(auth.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		h.fail(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h *Handler) getProfile(c *gin.Context) {
	identity := mustIdentity(c)

	user, err := h.profiles.GetProfile(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (h *Handler) updateProfile(c *gin.Context) {
	identity := mustIdentity(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), identity, req.Name, req.Username)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

const maxAvatarBytes = 5 << 20

func (h *Handler) uploadAvatar(c *gin.Context) {
	identity := mustIdentity(c)

	if h.storage == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar must be at most 5 MiB"})
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !isImageContentType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "avatar must be an image"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer file.Close()

	imageURL, err := h.storage.UploadAvatar(c.Request.Context(), storage.UploadInput{
		Key:         avatarKey(identity.UserID, fileHeader.Filename),
		ContentType: contentType,
		Body:        file,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	user, err := h.profiles.SetImage(c.Request.Context(), identity, imageURL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) listLinks(c *gin.Context) {
	identity := mustIdentity(c)

	links, err := h.links.List(c.Request.Context(), identity)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp := make([]LinkResponse, len(links))
	for i := range links {
		resp[i] = linkToResponse(links[i])
	}
	c.JSON(http.StatusOK, resp)
}

type linkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (h *Handler) createLink(c *gin.Context) {
	identity := mustIdentity(c)

	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	link, err := h.links.Create(c.Request.Context(), identity, req.Title, req.URL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, linkToResponse(*link))
}

func (h *Handler) updateLink(c *gin.Context) {
	identity := mustIdentity(c)

	var req linkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	link, err := h.links.Update(c.Request.Context(), identity, c.Param("id"), req.Title, req.URL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, linkToResponse(*link))
}

func (h *Handler) deleteLink(c *gin.Context) {
	identity := mustIdentity(c)

	if err := h.links.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "link deleted"})
}

// fail maps expected service errors to their status and hides
// everything else behind a logged 500.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "email already registered"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "username already taken"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
	case errors.Is(err, service.ErrLinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "link not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "not allowed"})
	default:
		h.logger.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(auth.SessionCookie, token, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
}

// UserResponse is the public projection of a user; the password hash
// never leaves the service layer.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

type LinkResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Username: user.Username,
		Image:    user.Image,
	}
}

func linkToResponse(link domain.Link) LinkResponse {
	return LinkResponse{
		ID:        link.ID,
		UserID:    link.UserID,
		Title:     link.Title,
		URL:       link.URL,
		Position:  link.Position,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
		UpdatedAt: link.UpdatedAt.Format(time.RFC3339),
	}
}

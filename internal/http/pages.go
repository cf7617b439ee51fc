package http

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wirawat444/web-sc-linkhub/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// registerPages mounts the server-rendered pages. The public profile
// route is registered last so the static pages win over :username.
func (h *Handler) registerPages(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", h.homePage)
	router.GET("/register", h.registerPage)
	router.GET("/login", h.loginPage)
	router.GET("/dashboard", h.requirePageSession(), h.dashboardPage)
	router.GET("/:username", h.profilePage)
}

func (h *Handler) homePage(c *gin.Context) {
	if _, err := h.gate.Resolve(c.Request); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "home.html", nil)
}

func (h *Handler) registerPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) dashboardPage(c *gin.Context) {
	identity := mustIdentity(c)

	user, err := h.profiles.GetProfile(c.Request.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		h.pageError(c, err)
		return
	}

	links, err := h.links.List(c.Request.Context(), identity)
	if err != nil {
		h.pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":  userToResponse(user),
		"Links": links,
	})
}

func (h *Handler) profilePage(c *gin.Context) {
	profile, err := h.profiles.Public(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.HTML(http.StatusNotFound, "notfound.html", nil)
			return
		}
		h.pageError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"User":  userToResponse(profile.User),
		"Links": profile.Links,
	})
}

func (h *Handler) pageError(c *gin.Context, err error) {
	h.logger.WithError(err).Error("page render failed")
	c.HTML(http.StatusInternalServerError, "error.html", nil)
}

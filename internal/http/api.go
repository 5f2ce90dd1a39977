package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"kob-backend/internal/service"
)

const (
	msgAddUserOK    = "Add User Successfully"
	msgDeleteUserOK = "Delete User Successfully"
)

// Handler wires HTTP routes to the user service.
type Handler struct {
	users  service.UserService
	maps   service.GameMapService
	logger logrus.FieldLogger
}

func NewHandler(users service.UserService, maps service.GameMapService, logger logrus.FieldLogger) *Handler {
	return &Handler{
		users:  users,
		maps:   maps,
		logger: logger,
	}
}

// Route binds a method and gin path pattern to a handler.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes returns the route table served by the handler.
func (h *Handler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/user/all", Handler: h.listUsers},
		{Method: http.MethodGet, Path: "/user/:userId", Handler: h.getUser},
		// The password travels in the path. Kept for client compatibility;
		// RequestLogger only records the route pattern.
		{Method: http.MethodGet, Path: "/user/add/:userId/:username/:password", Handler: h.addUser},
		{Method: http.MethodGet, Path: "/user/delete/:userId", Handler: h.deleteUser},
		{Method: http.MethodGet, Path: "/game/map", Handler: h.generateMap},
		{Method: http.MethodGet, Path: "/health", Handler: func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": "ok"})
		}},
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(RequestLogger(h.logger), corsMiddleware())
	for _, r := range h.Routes() {
		router.Handle(r.Method, r.Path, r.Handler)
	}
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if user == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) addUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	err := h.users.AddUser(c.Request.Context(), id, c.Param("username"), c.Param("password"))
	var verr *service.ValidationError
	switch {
	case err == nil:
		c.String(http.StatusOK, msgAddUserOK)
	case errors.As(err, &verr):
		c.String(http.StatusOK, verr.Message)
	case errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.internalError(c, err)
	}
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.internalError(c, err)
		return
	}
	c.String(http.StatusOK, msgDeleteUserOK)
}

func (h *Handler) generateMap(c *gin.Context) {
	m, err := h.maps.Generate(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("route", c.FullPath()).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// parseUserID accepts only ids that fit a signed 32-bit integer.
func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return 0, false
	}
	return id, true
}

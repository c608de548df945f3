package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"movecar-service/internal/config"
	"movecar-service/internal/movecar"
	"movecar-service/internal/session"
	"movecar-service/internal/web"
)

// Handler maps HTTP routes onto the session state machine. Thin dispatch
// only: it derives the session key, binds bodies leniently and translates
// results to status codes.
type Handler struct {
	svc      *movecar.Service
	resolver config.Resolver
	log      zerolog.Logger
}

func New(svc *movecar.Service, resolver config.Resolver, log zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		resolver: resolver,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/notify", h.notify)
	api.GET("/get-location", h.getLocation)
	api.POST("/owner-confirm", h.ownerConfirm)
	api.GET("/check-status", h.checkStatus)

	r.GET("/owner-confirm", h.ownerPage)
	r.NoRoute(h.requesterPage)
}

type notifyRequest struct {
	Message  string               `json:"message"`
	Location *movecar.Coordinates `json:"location"`
	Delayed  bool                 `json:"delayed"`
	Lang     string               `json:"lang"`
}

type confirmRequest struct {
	Location *movecar.Coordinates `json:"location"`
	Lang     string               `json:"lang"`
}

// sessionKey derives the normalized session key from the u query parameter.
func sessionKey(c *gin.Context) string {
	return session.Normalize(c.Query("u"))
}

func origin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}

func (h *Handler) notify(c *gin.Context) {
	var req notifyRequest
	// Malformed bodies degrade to defaults rather than being rejected.
	_ = c.ShouldBindJSON(&req)

	err := h.svc.Notify(c.Request.Context(), movecar.NotifyInput{
		SessionKey: sessionKey(c),
		Message:    req.Message,
		Location:   req.Location,
		Delayed:    req.Delayed,
		Lang:       req.Lang,
		Origin:     origin(c),
	})

	switch {
	case errors.Is(err, movecar.ErrRateLimited):
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func (h *Handler) getLocation(c *gin.Context) {
	raw, err := h.svc.RequesterLocation(c.Request.Context(), sessionKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *Handler) ownerConfirm(c *gin.Context) {
	var req confirmRequest
	_ = c.ShouldBindJSON(&req)

	h.svc.Confirm(c.Request.Context(), movecar.ConfirmInput{
		SessionKey: sessionKey(c),
		Location:   req.Location,
		Lang:       req.Lang,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) checkStatus(c *gin.Context) {
	report, err := h.svc.Status(c.Request.Context(), sessionKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) carTitle(key string) string {
	if title, ok := h.resolver.Resolve(key, "CAR_TITLE"); ok && title != "" {
		return title
	}
	return "车主"
}

func (h *Handler) ownerPage(c *gin.Context) {
	key := sessionKey(c)

	var buf bytes.Buffer
	if err := web.RenderOwner(&buf, web.OwnerPage{
		SessionKey: key,
		CarTitle:   h.carTitle(key),
	}); err != nil {
		h.log.Error().Err(err).Msg("owner page render failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) requesterPage(c *gin.Context) {
	key := sessionKey(c)
	phone, _ := h.resolver.Resolve(key, "PHONE_NUMBER")

	var buf bytes.Buffer
	if err := web.RenderRequester(&buf, web.RequesterPage{
		SessionKey: key,
		CarTitle:   h.carTitle(key),
		Phone:      phone,
	}); err != nil {
		h.log.Error().Err(err).Msg("requester page render failed")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

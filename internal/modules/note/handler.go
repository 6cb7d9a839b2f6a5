package note

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rohit273848/travel-notes-app/internal/middleware"
	"github.com/Rohit273848/travel-notes-app/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	notes := rg.Group("/notes")

	notes.GET("/public", h.listPublic)
	notes.GET("/search", h.search)
	notes.GET("/:id", middleware.OptionalAuth(), h.getByID)

	authed := notes.Group("", authMW)
	authed.POST("", h.create)
	authed.GET("/my-notes", h.myNotes)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var in NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	note, err := h.svc.Create(middleware.CurrentUserID(c), &in)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	response.Created(c, note)
}

func (h *Handler) listPublic(c *gin.Context) {
	notes, err := h.svc.ListPublic()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notes)
}

func (h *Handler) search(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		response.BadRequest(c, "place query is required")
		return
	}
	notes, err := h.svc.SearchPublicByPlace(place)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notes)
}

func (h *Handler) myNotes(c *gin.Context) {
	notes, err := h.svc.ListByOwner(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, notes)
}

func (h *Handler) getByID(c *gin.Context) {
	note, err := h.svc.GetVisible(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	if note == nil {
		response.NotFound(c, "note not found")
		return
	}
	response.OK(c, note)
}

func (h *Handler) update(c *gin.Context) {
	var in NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	note, err := h.svc.UpdateOwned(c.Param("id"), middleware.CurrentUserID(c), &in)
	if err != nil {
		respondNoteError(c, err)
		return
	}
	if note == nil {
		response.NotFound(c, "note not found")
		return
	}
	response.OK(c, note)
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.DeleteOwned(c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c)
		return
	}
	if !deleted {
		response.NotFound(c, "note not found")
		return
	}
	response.OK(c, gin.H{"message": "note deleted successfully"})
}

// respondNoteError separates client-fixable validation failures from datastore
// failures so the two never collapse into one status.
func respondNoteError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		response.BadRequest(c, verr.Error())
		return
	}
	response.InternalError(c)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"la-interior-backend/internal/models"
	"la-interior-backend/internal/workflow"
)

type SessionHandler struct {
	sessions *workflow.Manager
}

func NewSessionHandler(sessions *workflow.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// GetSession godoc
// @Summary     Get the design session
// @Description Returns the full state of the user's current design session.
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     401 {object} models.ErrorResponse
// @Router      /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.sessions.Get(userID).Snapshot())
}

// ResetSession godoc
// @Summary     Reset the design session
// @Description Discards the user's session state, including any pending repaint.
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.MessageResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session [delete]
func (h *SessionHandler) ResetSession(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	h.sessions.Reset(userID)
	c.JSON(http.StatusOK, models.MessageResponse{Message: "session reset"})
}

// SetPhoto godoc
// @Summary     Upload a room photo
// @Description Replaces the session's room photo, resets all derived state, and starts wall-color detection.
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SetPhotoRequest true "Photo name and base64 data URL"
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/photo [post]
func (h *SessionHandler) SetPhoto(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.SetPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session := h.sessions.Get(userID)
	if err := session.SetPhoto(req.Name, req.DataURL); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// AddColor godoc
// @Summary     Add a color to the working set
// @Description Appends a hex color to the selection set. The first color added becomes active.
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ColorRequest true "Hex color"
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/colors [post]
func (h *SessionHandler) AddColor(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session := h.sessions.Get(userID)
	if err := session.AddColor(req.Color); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// SelectActiveColor godoc
// @Summary     Select the active color
// @Description Makes a hex color active, adding it to the selection set if needed, and schedules the debounced repaint.
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ColorRequest true "Hex color"
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/colors/active [put]
func (h *SessionHandler) SelectActiveColor(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session := h.sessions.Get(userID)
	if err := session.SelectAsActive(req.Color); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// RemoveColor godoc
// @Summary     Remove a color from the working set
// @Description Removes a hex color. Removing the active color reassigns active to the first remaining member.
// @Tags        session
// @Produce     json
// @Security    Bearer
// @Param       hex path string true "URL-encoded hex color"
// @Success     200 {object} models.SessionSnapshot
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/colors/{hex} [delete]
func (h *SessionHandler) RemoveColor(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	session := h.sessions.Get(userID)
	session.RemoveColor(c.Param("hex"))
	c.JSON(http.StatusOK, session.Snapshot())
}

// SetQuestionnaire godoc
// @Summary     Store questionnaire answers
// @Description Stores the complete preference questionnaire without triggering a suggestion.
// @Tags        session
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.QuestionnaireAnswers true "Preference answers"
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/questionnaire [post]
func (h *SessionHandler) SetQuestionnaire(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session := h.sessions.Get(userID)
	if err := session.SetQuestionnaire(answers); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

// suggest runs a coordinator operation and maps local validation
// failures to 400. Provider failures are not HTTP errors: they land in
// the suggestion slot's error field, visible in the returned snapshot.
func (h *SessionHandler) suggest(c *gin.Context, run func(*workflow.Session) error) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	session := h.sessions.Get(userID)
	if err := run(session); err != nil {
		if isLocalValidation(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "suggestion failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, session.Snapshot())
}

func isLocalValidation(err error) bool {
	return errors.Is(err, workflow.ErrNoPhoto) ||
		errors.Is(err, workflow.ErrNoActiveColor) ||
		errors.Is(err, workflow.ErrInvalidColor) ||
		errors.Is(err, workflow.ErrIncompleteQuestionnaire)
}

// DetectWallColors godoc
// @Summary     Detect existing wall colors
// @Description Re-runs wall-color detection on the uploaded photo.
// @Tags        suggestions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/detect [post]
func (h *SessionHandler) DetectWallColors(c *gin.Context) {
	h.suggest(c, func(s *workflow.Session) error {
		return s.DetectWallColors(c.Request.Context())
	})
}

// GeneratePalette godoc
// @Summary     Generate a palette from the photo
// @Description Requests a wall-paint palette derived from the room image alone.
// @Tags        suggestions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/palette [post]
func (h *SessionHandler) GeneratePalette(c *gin.Context) {
	h.suggest(c, func(s *workflow.Session) error {
		return s.GeneratePalette(c.Request.Context())
	})
}

// SuggestFromPreferences godoc
// @Summary     Generate a palette from preferences
// @Description Requests a palette driven by the questionnaire answers; success opens the preference gate.
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.QuestionnaireAnswers true "Complete preference answers"
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/preferences [post]
func (h *SessionHandler) SuggestFromPreferences(c *gin.Context) {
	var answers models.QuestionnaireAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	h.suggest(c, func(s *workflow.Session) error {
		return s.SuggestFromPreferences(c.Request.Context(), answers)
	})
}

// SuggestComplementary godoc
// @Summary     Suggest complementary colors
// @Description Requests accent colors that pair with the active color.
// @Tags        suggestions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/complementary [post]
func (h *SessionHandler) SuggestComplementary(c *gin.Context) {
	h.suggest(c, func(s *workflow.Session) error {
		return s.SuggestComplementary(c.Request.Context())
	})
}

// SuggestSheen godoc
// @Summary     Suggest a paint sheen
// @Description Requests the most suitable sheen for the active color in this room.
// @Tags        suggestions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/sheen [post]
func (h *SessionHandler) SuggestSheen(c *gin.Context) {
	h.suggest(c, func(s *workflow.Session) error {
		return s.SuggestSheen(c.Request.Context())
	})
}

// Repaint godoc
// @Summary     Repaint the room walls
// @Description Generates a repainted image of the room in the active color.
// @Tags        suggestions
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionSnapshot
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /session/suggest/repaint [post]
func (h *SessionHandler) Repaint(c *gin.Context) {
	h.suggest(c, func(s *workflow.Session) error {
		// Repaints regularly outlive the originating request; run them
		// against a fresh context so a client disconnect does not
		// abort the generation.
		return s.Repaint(context.Background())
	})
}

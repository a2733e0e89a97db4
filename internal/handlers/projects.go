package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"la-interior-backend/internal/models"
	"la-interior-backend/internal/store"
	"la-interior-backend/internal/workflow"
)

type ProjectsHandler struct {
	sessions *workflow.Manager
	store    *store.Store
}

func NewProjectsHandler(sessions *workflow.Manager, st *store.Store) *ProjectsHandler {
	return &ProjectsHandler{sessions: sessions, store: st}
}

// SaveProject godoc
// @Summary     Save the session as a project
// @Description Assembles the current design session into a project record and persists it under the given name, replacing the record when the session is editing one. A persistence failure leaves the session state intact.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SaveProjectRequest true "Project name"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) SaveProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	session := h.sessions.Get(userID)
	project, isEditing, err := session.AssembleProject(req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.SaveProject(userID, *project, isEditing); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		log.Printf("failed to persist project %s: %v", project.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects godoc
// @Summary     List saved projects
// @Description Returns summaries of the authenticated user's projects in save order.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProjectListResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.store.ListProjects(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list projects", Message: err.Error()})
		return
	}

	summaries := make([]models.ProjectSummary, len(projects))
	for i, p := range projects {
		summaries[i] = models.ProjectSummary{
			ID:             p.ID,
			Name:           p.Name,
			RoomPhotoURL:   p.RoomPhotoURL,
			SelectedColors: p.SelectedColors,
			CreatedAt:      p.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: summaries})
}

// GetProject godoc
// @Summary     Get a project
// @Description Returns the full stored project record.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Success     200 {object} models.Project
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.store.FindProject(userID, c.Param("project_id"))
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, project)
}

// LoadProject godoc
// @Summary     Load a project into the session
// @Description Resets the session and primes it with a stored project for editing.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Success     200 {object} models.SessionSnapshot
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id}/load [post]
func (h *ProjectsHandler) LoadProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	project, err := h.store.FindProject(userID, c.Param("project_id"))
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load project", Message: err.Error()})
		return
	}

	h.sessions.Reset(userID)
	session := h.sessions.Get(userID)
	session.LoadProject(*project)

	c.JSON(http.StatusOK, session.Snapshot())
}

// DeleteProject godoc
// @Summary     Delete a project
// @Description Removes the stored project record.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       project_id path string true "Project ID"
// @Success     200 {object} models.MessageResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProject(userID, c.Param("project_id")); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete project", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "project deleted successfully"})
}

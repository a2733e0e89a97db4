package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"la-interior-backend/internal/designai"
	"la-interior-backend/internal/models"
)

type InspirationHandler struct {
	aiClient *designai.Client
}

func NewInspirationHandler(aiClient *designai.Client) *InspirationHandler {
	return &InspirationHandler{aiClient: aiClient}
}

// Generate godoc
// @Summary     Generate an inspiration image
// @Description Produces an inspirational room image from a free-text prompt. Unlike the session providers this call is synchronous and a provider failure is the response.
// @Tags        inspiration
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.InspirationRequest true "Image prompt"
// @Success     200 {object} models.InspirationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /inspiration [post]
func (h *InspirationHandler) Generate(c *gin.Context) {
	if _, _, ok := currentUser(c); !ok {
		return
	}

	var req models.InspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "a prompt is required"})
		return
	}

	result, err := h.aiClient.GenerateInspirationImage(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to generate inspiration image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.InspirationResponse{
		ImageDataURI:  result.ImageDataURI,
		RevisedPrompt: result.RevisedPrompt,
	})
}

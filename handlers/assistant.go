package handlers

import (
	"net/http"

	"roomly/models"
	"roomly/services/assistant"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the free-text assistant endpoint.
type AssistantHandler struct {
	Svc assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// HandleAssistantRequest handles POST /api/assistant.
func (h *AssistantHandler) HandleAssistantRequest(c *gin.Context) {
	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "reason": "prompt is required"})
		return
	}

	req := models.AssistantRequest{
		EmployeeID: requesterID(c),
		Prompt:     input.Prompt,
	}
	resp, err := h.Svc.Process(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"parsed": resp.Parsed,
		"result": resp.Result,
	})
}

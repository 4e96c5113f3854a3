package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/taskbot/taskbot-api/internal/errors"
	"github.com/taskbot/taskbot-api/internal/services"
)

// ChatHandler relays chat messages to the generative-text provider.
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new ChatHandler. A nil service means no provider
// key was configured.
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat forwards the message and returns the provider's reply verbatim.
func (h *ChatHandler) Chat(c *gin.Context) {
	type ChatRequest struct {
		Action  string `json:"action"`
		Message string `json:"message" binding:"required"`
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid input message")
		return
	}

	if h.chatService == nil {
		apierrors.ServiceUnavailable(c, "Chat service is not configured. Please set OPENAI_API_KEY environment variable.")
		return
	}

	message := req.Message
	if action := strings.TrimSpace(req.Action); action != "" {
		message = action + ": " + message
	}

	reply, err := h.chatService.Reply(c.Request.Context(), message)
	if err != nil {
		apierrors.InternalError(c, "Failed to process the request")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": reply,
	})
}

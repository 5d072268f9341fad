package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/service/commands"
)

// TextDispatcher answers free-form text commands.
type TextDispatcher interface {
	HandleText(ctx context.Context, message string) (string, error)
}

// CommandRequest carries one text command.
type CommandRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommandHandler exposes the text command dispatcher over HTTP.
type CommandHandler struct {
	dispatcher TextDispatcher
	logger     *zap.Logger
}

// NewCommandHandler constructs the HTTP handler adapter.
func NewCommandHandler(dispatcher TextDispatcher, logger *zap.Logger) *CommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandHandler{dispatcher: dispatcher, logger: logger}
}

// Handle runs one command and replies with its text.
func (h *CommandHandler) Handle(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid command payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.dispatcher.HandleText(c.Request.Context(), req.Text)
	if err != nil {
		status := statusFor(err)
		if errors.Is(err, commands.ErrInvalidArguments) || errors.Is(err, commands.ErrUnsupportedCommand) {
			status = http.StatusBadRequest
		}
		if status >= http.StatusInternalServerError {
			h.logger.Error("command failed", zap.Error(err))
			c.JSON(status, gin.H{"error": "internal error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

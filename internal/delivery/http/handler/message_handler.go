package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/roommate-backend/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// SendMessage handles POST /messages
// @Summary Send message
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body message.SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req message.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), userID, &req)
	if err != nil {
		domainError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// GetConversation handles GET /messages/:user_id
// @Summary Conversation with a user
// @Description Returns messages oldest first and marks the peer's messages read
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param user_id path int true "Peer profile ID"
// @Success 200 {array} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /messages/{user_id} [get]
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	peerID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user_id",
			Field: "user_id",
		})
		return
	}

	messages, err := h.messageUseCase.Conversation(c.Request.Context(), userID, peerID)
	if err != nil {
		domainError(c, err, "failed to get messages")
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetConversations handles GET /conversations
// @Summary List conversations
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Conversation
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /conversations [get]
func (h *MessageHandler) GetConversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		unauthorized(c)
		return
	}

	conversations, err := h.messageUseCase.Conversations(c.Request.Context(), userID)
	if err != nil {
		domainError(c, err, "failed to get conversations")
		return
	}

	c.JSON(http.StatusOK, conversations)
}

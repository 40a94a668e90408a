package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sportsmockery/smgo/middleware"
	"github.com/sportsmockery/smgo/models"
	"github.com/sportsmockery/smgo/utils"
)

const chatDefaultPageSize = 50

// ChatController serves the team chat rooms.
type ChatController struct {
	db *gorm.DB
}

// NewChatController creates a new ChatController instance.
func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{db: db}
}

type chatListResponse struct {
	Messages []models.ChatMessage `json:"messages"`
	HasMore  bool                 `json:"has_more"`
}

// ListMessages returns messages for a room, newest first, with cursor
// pagination. `before` is the created_at of the oldest message the client
// already holds (an opaque cursor from its point of view); there is no
// total count, has_more is the only signal for another page.
func (c *ChatController) ListMessages(ctx *gin.Context) {
	room := strings.TrimSpace(ctx.Query("room"))
	if room == "" {
		utils.Fail(ctx, http.StatusBadRequest, "missing room")
		return
	}

	limit := chatDefaultPageSize
	if l, err := strconv.Atoi(ctx.Query("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	q := c.db.Preload("User").Where("room = ?", room)
	if before := ctx.Query("before"); before != "" {
		cursor, err := time.Parse(time.RFC3339Nano, before)
		if err != nil {
			utils.Fail(ctx, http.StatusBadRequest, "invalid before cursor")
			return
		}
		q = q.Where("created_at < ?", cursor)
	}

	var messages []models.ChatMessage
	if err := q.Order("created_at DESC").Limit(limit + 1).Find(&messages).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load messages")
		return
	}

	hasMore := len(messages) > limit
	if hasMore {
		messages = messages[:limit]
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	utils.JSON(ctx, http.StatusOK, chatListResponse{Messages: messages, HasMore: hasMore})
}

type sendMessageRequest struct {
	RoomID      string `json:"roomId" binding:"required"`
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
	GifURL      string `json:"gifUrl"`
	ReplyToID   string `json:"replyToId"`
}

// SendMessage posts a message into a room. The content type discriminator is
// stored as sent; a gif URL with a text content type is the server's call to
// render or reject, not the transport's.
func (c *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "authentication required")
		return
	}

	var req sendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = models.ChatContentText
	}
	content := utils.Sanitize(strings.TrimSpace(req.Content))
	if content == "" && req.GifURL == "" {
		utils.Fail(ctx, http.StatusBadRequest, "message cannot be empty")
		return
	}

	msg := models.ChatMessage{
		ID:          uuid.NewString(),
		Room:        req.RoomID,
		UserID:      userID,
		Content:     content,
		ContentType: contentType,
		GifURL:      req.GifURL,
		ReplyToID:   req.ReplyToID,
		CreatedAt:   time.Now(),
	}
	if err := c.db.Create(&msg).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to send message")
		return
	}

	if err := c.db.Preload("User").First(&msg, "id = ?", msg.ID).Error; err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to load message")
		return
	}
	utils.JSON(ctx, http.StatusCreated, msg)
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"log/slog"

	"github.com/govtjobs-alert/bot/app/cfg"
	"github.com/govtjobs-alert/bot/app/database"
)

func NewHandler(posts database.PostRepository, chats database.ChatRepository, fetchInterval int) *Handler {
	return &Handler{posts: posts, chats: chats, fetchInterval: fetchInterval}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
	}

	if chatCount, err := h.chats.GetChatCount(); err == nil {
		health["chats"] = chatCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"fetch_interval_minutes": h.fetchInterval,
	}

	if chatCount, err := h.chats.GetChatCount(); err != nil {
		slog.Error("Database error", "operation", "get_chat_count", "error", err)
	} else {
		stats["active_chats"] = chatCount
	}

	if postCount, err := h.posts.GetPostCount(); err != nil {
		slog.Error("Database error", "operation", "get_post_count", "error", err)
	} else {
		stats["posted_total"] = postCount
	}

	c.JSON(http.StatusOK, stats)
}

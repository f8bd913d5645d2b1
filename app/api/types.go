package api

import (
	"github.com/govtjobs-alert/bot/app/database"
)

type Handler struct {
	posts         database.PostRepository
	chats         database.ChatRepository
	fetchInterval int
}

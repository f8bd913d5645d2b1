package database

type PostRepository interface {
	IsPosted(fingerprint string) (bool, error)
	MarkPosted(fingerprint, title, url string) error
	GetPostCount() (int, error)
}

type ChatRepository interface {
	UpsertChat(chatID int64, title, kind string) error
	RemoveChat(chatID int64) error
	GetActiveChats() ([]Chat, error)
	GetChatCount() (int, error)
}

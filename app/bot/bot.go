package bot

import (
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/govtjobs-alert/bot/app/cfg"
	"github.com/govtjobs-alert/bot/app/database"
	"github.com/govtjobs-alert/bot/app/delivery"
	"github.com/govtjobs-alert/bot/app/feed"
	"github.com/govtjobs-alert/bot/app/render"
	"log/slog"
)

const pollTimeout = 10 * time.Second

// verifyUnique identifies the membership verification callback button.
const verifyUnique = "verify_membership"

// Bot owns the Telegram long poller and the chat command surface. It also
// implements delivery.Messenger, so the poster fans posts out through it.
type Bot struct {
	tb    *tele.Bot
	posts database.PostRepository
	chats database.ChatRepository

	poster   *delivery.Poster
	fetcher  *feed.Fetcher
	enricher delivery.Enricher
}

func New(posts database.PostRepository, chats database.ChatRepository) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:  cfg.Get().BotToken,
		Poller: &tele.LongPoller{Timeout: pollTimeout},
		OnError: func(err error, c tele.Context) {
			slog.Error("Telegram handler error", "error", err)
		},
	})
	if err != nil {
		return nil, err
	}

	return &Bot{tb: tb, posts: posts, chats: chats}, nil
}

// Setup attaches the pipeline and registers all handlers. Called after the
// poster is constructed, since the poster in turn sends through this bot.
func (b *Bot) Setup(poster *delivery.Poster, fetcher *feed.Fetcher, enricher delivery.Enricher) {
	b.poster = poster
	b.fetcher = fetcher
	b.enricher = enricher

	b.tb.Handle("/start", b.handleStart)
	b.tb.Handle(&tele.Btn{Unique: verifyUnique}, b.handleVerify)
	b.tb.Handle(tele.OnMyChatMember, b.handleMyChatMember)

	b.tb.Handle("/forcefetch", b.handleForceFetch)
	b.tb.Handle("/test", b.handleTest)
	b.tb.Handle("/stats", b.handleStats)

	b.tb.Handle("/addchat", b.handleAddChat)
	b.tb.Handle("/removechat", b.handleRemoveChat)
	b.tb.Handle("/listchats", b.handleListChats)
	b.tb.Handle("/broadcast", b.handleBroadcast)
}

// Start blocks processing updates until Stop is called.
func (b *Bot) Start() {
	slog.Info("Telegram bot started", "username", cfg.Get().BotUsername)
	b.tb.Start()
}

func (b *Bot) Stop() {
	b.tb.Stop()
	slog.Info("Telegram bot stopped")
}

func (b *Bot) isAdmin(user *tele.User) bool {
	return user != nil && user.ID == cfg.Get().AdminID
}

func (b *Bot) isGroupAdmin(chat *tele.Chat, user *tele.User) bool {
	if chat == nil || user == nil {
		return false
	}
	member, err := b.tb.ChatMemberOf(chat, user)
	if err != nil {
		return false
	}
	return member.Role == tele.Administrator || member.Role == tele.Creator
}

// commandAllowed gates /forcefetch, /test and /stats: the bot admin anywhere,
// group admins inside their groups. Silently ignores strangers in private.
func (b *Bot) commandAllowed(c tele.Context) bool {
	if c.Chat() != nil && c.Chat().Type == tele.ChatPrivate {
		return b.isAdmin(c.Sender())
	}
	if b.isAdmin(c.Sender()) || b.isGroupAdmin(c.Chat(), c.Sender()) {
		return true
	}
	_ = c.Send("❌ Only group admins can use this command.")
	return false
}

func htmlOpts() *tele.SendOptions {
	return &tele.SendOptions{ParseMode: tele.ModeHTML, DisableWebPagePreview: true}
}

// inlineActions converts rendered post actions into an inline keyboard,
// one URL button per row.
func inlineActions(actions []render.Action) *tele.ReplyMarkup {
	if len(actions) == 0 {
		return nil
	}
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(actions))
	for _, action := range actions {
		rows = append(rows, markup.Row(markup.URL(action.Label, action.URL)))
	}
	markup.Inline(rows...)
	return markup
}

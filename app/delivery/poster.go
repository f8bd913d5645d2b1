package delivery

import (
	"context"
	"log/slog"
	"time"

	"github.com/govtjobs-alert/bot/app/classify"
	"github.com/govtjobs-alert/bot/app/database"
	"github.com/govtjobs-alert/bot/app/feed"
	"github.com/govtjobs-alert/bot/app/render"
)

// Poster runs one delivery cycle: fetch new items, enrich, classify,
// format, fan out to every registered destination. Nothing it does can
// fail the cycle as a whole.
type Poster struct {
	aggregator Aggregator
	enricher   Enricher
	posts      database.PostRepository
	chats      database.ChatRepository
	messenger  Messenger
	sendDelay  time.Duration
	itemDelay  time.Duration
}

func NewPoster(aggregator Aggregator, enricher Enricher, posts database.PostRepository,
	chats database.ChatRepository, messenger Messenger, sendDelay time.Duration) *Poster {
	return &Poster{
		aggregator: aggregator,
		enricher:   enricher,
		posts:      posts,
		chats:      chats,
		messenger:  messenger,
		sendDelay:  sendDelay,
		itemDelay:  4 * sendDelay,
	}
}

// RunCycle executes one full cycle and returns the number of successful
// per-destination sends.
func (p *Poster) RunCycle(ctx context.Context) int {
	started := time.Now()

	items := p.aggregator.Run(ctx)
	if len(items) == 0 {
		slog.Info("Cycle completed", "new_items", 0, "sent", 0, "duration", time.Since(started))
		return 0
	}

	chats, err := p.chats.GetActiveChats()
	if err != nil {
		slog.Error("Failed to load destinations, skipping cycle", "error", err)
		return 0
	}
	if len(chats) == 0 {
		slog.Info("No destinations registered, skipping cycle", "new_items", len(items))
		return 0
	}

	sentTotal := 0
	for _, item := range items {
		select {
		case <-ctx.Done():
			slog.Warn("Cycle interrupted", "sent", sentTotal)
			return sentTotal
		default:
		}

		sentTotal += p.runItem(ctx, item, chats)
		p.pause(ctx, p.itemDelay)
	}

	slog.Info("Cycle completed",
		"new_items", len(items),
		"destinations", len(chats),
		"sent", sentTotal,
		"duration", time.Since(started))

	return sentTotal
}

// runItem processes a single item end to end. Failures stay inside this
// boundary: one bad item never aborts the cycle.
func (p *Poster) runItem(ctx context.Context, item feed.Item, chats []database.Chat) int {
	enriched := p.enricher.Run(ctx, item)
	category := classify.Run(enriched.Title + " " + enriched.Summary)
	body, actions := render.Format(enriched, category)

	sent := 0
	for _, chat := range chats {
		if ctx.Err() != nil {
			break
		}

		err := p.messenger.SendPost(ctx, chat.ChatID, body, actions)
		if err == nil {
			sent++
			p.pause(ctx, p.sendDelay)
			continue
		}

		if IsPermanentSendError(err) {
			slog.Warn("Destination unreachable, deregistering", "chat_id", chat.ChatID, "title", chat.Title, "error", err)
			if removeErr := p.chats.RemoveChat(chat.ChatID); removeErr != nil {
				slog.Error("Failed to deregister destination", "chat_id", chat.ChatID, "error", removeErr)
			}
		} else {
			slog.Warn("Send failed", "chat_id", chat.ChatID, "error", err)
		}
	}

	// Fire-and-forget: the record is written after attempting every
	// destination, success or not, so a systematically failing
	// destination set cannot cause duplicate floods in later cycles.
	if err := p.posts.MarkPosted(item.Fingerprint, item.Title, item.Link); err != nil {
		slog.Error("Failed to record delivery", "fingerprint", item.Fingerprint, "error", err)
	}

	slog.Info("Item delivered", "title", enriched.Title, "category", category, "enriched", enriched.Enriched, "sent", sent)
	return sent
}

// Broadcast fans a literal message out to every destination, bypassing the
// pipeline. Returns sends attempted and sends succeeded.
func (p *Poster) Broadcast(ctx context.Context, text string) (int, int) {
	chats, err := p.chats.GetActiveChats()
	if err != nil {
		slog.Error("Failed to load destinations for broadcast", "error", err)
		return 0, 0
	}

	sent := 0
	for _, chat := range chats {
		if err := p.messenger.SendText(ctx, chat.ChatID, text); err != nil {
			slog.Warn("Broadcast send failed", "chat_id", chat.ChatID, "error", err)
			continue
		}
		sent++
		p.pause(ctx, p.sendDelay)
	}

	return len(chats), sent
}

func (p *Poster) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/govtjobs-alert/bot/app/cfg"
	"github.com/govtjobs-alert/bot/app/classify"
	"github.com/govtjobs-alert/bot/app/feed"
	"github.com/govtjobs-alert/bot/app/render"
	"log/slog"
)

func (b *Bot) handleStart(c tele.Context) error {
	if c.Chat() == nil || c.Chat().Type != tele.ChatPrivate {
		return nil
	}
	opts := htmlOpts()
	opts.ReplyMarkup = welcomeMarkup()
	return c.Send(welcomeText, opts)
}

func (b *Bot) handleVerify(c tele.Context) error {
	if err := c.Respond(); err != nil {
		slog.Debug("Callback answer failed", "error", err)
	}

	verified := false
	channel, err := b.tb.ChatByUsername(atUsername(cfg.Get().ChannelUsername))
	if err == nil {
		member, err := b.tb.ChatMemberOf(channel, c.Sender())
		if err == nil {
			switch member.Role {
			case tele.Member, tele.Administrator, tele.Creator:
				verified = true
			}
		}
	}

	opts := htmlOpts()
	if verified {
		opts.ReplyMarkup = verifiedMarkup()
		return c.Edit(verifiedText, opts)
	}
	opts.ReplyMarkup = retryMarkup()
	return c.Edit(notVerifiedText, opts)
}

// handleMyChatMember tracks the bot's own membership: being added to a group
// or channel registers it as a destination, being removed deregisters it.
func (b *Bot) handleMyChatMember(c tele.Context) error {
	upd := c.ChatMember()
	if upd == nil || upd.NewChatMember == nil || upd.Chat == nil {
		return nil
	}
	chat := upd.Chat

	switch upd.NewChatMember.Role {
	case tele.Member, tele.Administrator:
		if err := b.chats.UpsertChat(chat.ID, chat.Title, string(chat.Type)); err != nil {
			slog.Error("Failed to register chat", "chat_id", chat.ID, "error", err)
			return err
		}
		slog.Info("Chat registered", "chat_id", chat.ID, "title", chat.Title)
		if err := b.SendText(context.Background(), chat.ID, activatedText); err != nil {
			slog.Warn("Welcome message failed", "chat_id", chat.ID, "error", err)
		}
	case tele.Left, tele.Kicked:
		if err := b.chats.RemoveChat(chat.ID); err != nil {
			slog.Error("Failed to deregister chat", "chat_id", chat.ID, "error", err)
			return err
		}
		slog.Info("Chat deregistered", "chat_id", chat.ID, "title", chat.Title)
	}
	return nil
}

func (b *Bot) handleForceFetch(c tele.Context) error {
	if !b.commandAllowed(c) {
		return nil
	}

	msg, err := b.tb.Send(c.Chat(), "🔄 <b>Fetching jobs now... please wait</b>", htmlOpts())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Get().CycleTimeout)*time.Second)
	defer cancel()
	count := b.poster.RunCycle(ctx)

	active, err := b.chats.GetChatCount()
	if err != nil {
		slog.Error("Failed to count chats", "error", err)
	}

	_, err = b.tb.Edit(msg, fmt.Sprintf(
		"✅ <b>Done!</b>\n📨 <b>%d</b> new jobs posted!\n👥 Active Chats: %d",
		count, active), htmlOpts())
	return err
}

// handleTest runs one live item through the whole pipeline and echoes the
// rendered post back without delivering it anywhere.
func (b *Bot) handleTest(c tele.Context) error {
	if !b.commandAllowed(c) {
		return nil
	}

	if err := c.Send("🔄 <b>Fetching live test job with AI...</b>", htmlOpts()); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Get().CycleTimeout)*time.Second)
	defer cancel()

	item := b.fetcher.FetchSample(ctx)
	if item == nil {
		item = sampleItem()
	}

	enriched := b.enricher.Run(ctx, *item)
	category := classify.Run(enriched.Title + " " + enriched.Summary)
	body, actions := render.Format(enriched, category)

	aiMark := "✅"
	if !enriched.Enriched {
		aiMark = "❌"
	}
	status := fmt.Sprintf("✅ <b>Source:</b> %s | <b>AI:</b> %s | <b>Category:</b> <code>%s</code>",
		render.Escape(item.Source), aiMark, category)
	if err := c.Send(status, htmlOpts()); err != nil {
		return err
	}

	opts := htmlOpts()
	opts.ReplyMarkup = inlineActions(actions)
	if err := c.Send(body, opts); err != nil {
		return err
	}

	return c.Send(b.statsText(), htmlOpts())
}

// handleStats is open in private chats, admin-gated in groups.
func (b *Bot) handleStats(c tele.Context) error {
	if c.Chat() == nil || c.Chat().Type != tele.ChatPrivate {
		if !b.isAdmin(c.Sender()) && !b.isGroupAdmin(c.Chat(), c.Sender()) {
			return nil
		}
	}
	return c.Send(b.statsText(), htmlOpts())
}

func (b *Bot) statsText() string {
	active, err := b.chats.GetChatCount()
	if err != nil {
		slog.Error("Failed to count chats", "error", err)
	}
	posted, err := b.posts.GetPostCount()
	if err != nil {
		slog.Error("Failed to count posts", "error", err)
	}

	return fmt.Sprintf(
		"📊 <b>Bot Statistics</b>\n\n"+
			"👥 Active Chats: <code>%d</code>\n"+
			"📝 Total Posted: <code>%d</code>\n"+
			"⏱ Auto Interval: <b>%d min</b>\n"+
			"🤖 AI: <b>Gemini + Groq ✅</b>\n"+
			"🔄 Scheduler: <b>Running ✅</b>",
		active, posted, cfg.Get().FetchInterval)
}

func (b *Bot) handleAddChat(c tele.Context) error {
	if !b.isAdmin(c.Sender()) {
		return nil
	}
	args := c.Args()
	if len(args) == 0 {
		return c.Send(addChatUsage)
	}

	chatID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(fmt.Sprintf("❌ Error: invalid chat id %q", args[0]))
	}
	title := "Manual"
	if len(args) > 1 {
		title = strings.Join(args[1:], " ")
	}

	if err := b.chats.UpsertChat(chatID, title, "channel"); err != nil {
		return c.Send(fmt.Sprintf("❌ Error: %v", err))
	}
	if err := c.Send(fmt.Sprintf("✅ Added: %s (%d)", title, chatID)); err != nil {
		return err
	}

	if err := b.SendText(context.Background(), chatID, connectedText); err != nil {
		return c.Send(fmt.Sprintf("⚠️ Added to DB but test post failed: %v\nMake sure bot is admin in channel.", err))
	}
	return nil
}

func (b *Bot) handleRemoveChat(c tele.Context) error {
	if !b.isAdmin(c.Sender()) {
		return nil
	}
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /removechat <chat_id>")
	}
	chatID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Send(fmt.Sprintf("❌ Error: invalid chat id %q", args[0]))
	}
	if err := b.chats.RemoveChat(chatID); err != nil {
		return c.Send(fmt.Sprintf("❌ Error: %v", err))
	}
	return c.Send("✅ Removed.")
}

func (b *Bot) handleListChats(c tele.Context) error {
	if !b.isAdmin(c.Sender()) {
		return nil
	}
	chats, err := b.chats.GetActiveChats()
	if err != nil {
		return c.Send(fmt.Sprintf("❌ Error: %v", err))
	}
	if len(chats) == 0 {
		return c.Send("⚠️ No chats registered.")
	}

	var sb strings.Builder
	sb.WriteString("📋 <b>Active Chats:</b>\n\n")
	for i, chat := range chats {
		if i == 20 {
			break
		}
		fmt.Fprintf(&sb, "• <code>%d</code> — %s (%s)\n", chat.ChatID, render.Escape(chat.Title), chat.Kind)
	}
	return c.Send(sb.String(), htmlOpts())
}

func (b *Bot) handleBroadcast(c tele.Context) error {
	if !b.isAdmin(c.Sender()) {
		return nil
	}
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /broadcast <message>")
	}

	text := "📢 <b>Broadcast</b>\n\n" + render.Escape(strings.Join(args, " "))
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Get().CycleTimeout)*time.Second)
	defer cancel()
	total, sent := b.poster.Broadcast(ctx, text)

	return c.Send(fmt.Sprintf("✅ Sent to %d/%d chats.", sent, total))
}

// sampleItem backs /test when no live source yields an entry.
func sampleItem() *feed.Item {
	title := "SSC CGL 2025 — 17,727 Vacancies | Apply Online"
	link := "https://ssc.nic.in"
	return &feed.Item{
		Fingerprint: feed.Fingerprint(link, title),
		Title:       title,
		Link:        link,
		Summary: "SSC CGL 2025 notification released by Staff Selection Commission. " +
			"17,727 vacancies for Group B & C posts. Age limit 18-32 years. " +
			"Fee: Rs 100 for General. Qualification: Graduation.",
		Source: "SSC (Sample)",
	}
}

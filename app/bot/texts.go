package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/govtjobs-alert/bot/app/cfg"
)

const welcomeText = "🇮🇳 <b>Welcome to GovtJobs Alert Bot!</b> 🇮🇳\n\n" +
	"━━━━━━━━━━━━━━━━━━━━━━\n" +
	"🔔 <b>Auto Updates Delivered Every 30 Min:</b>\n" +
	"📋 Government Job Notifications\n" +
	"📅 Exam Dates &amp; Schedules\n" +
	"🏆 Results &amp; Merit Lists\n" +
	"🎫 Admit Cards &amp; Hall Tickets\n" +
	"⚠️ Last Date Alerts &amp; Reminders\n" +
	"━━━━━━━━━━━━━━━━━━━━━━\n\n" +
	"📖 <b>How to use this bot:</b>\n" +
	"1️⃣ Join our official channel\n" +
	"2️⃣ Tap Verify button below\n" +
	"3️⃣ Add bot to your channel/group as Admin\n" +
	"4️⃣ Bot auto-posts jobs every 30 minutes!\n\n" +
	"🛠 <b>Group Admin Commands:</b>\n" +
	"/forcefetch — Fetch jobs right now\n" +
	"/test — Test bot is working\n" +
	"/stats — View bot statistics\n\n" +
	"⚠️ <b>Access Restricted!</b>\n" +
	"👇 Join channel first, then tap Verify."

const verifiedText = "✅ <b>Membership Verified!</b>\n\n" +
	"🎉 Welcome! You're all set.\n\n" +
	"📢 <b>To get live job updates:</b>\n" +
	"➕ Add this bot to your channel/group as <b>Admin</b>\n" +
	"📡 Bot will auto-post every 30 minutes!\n\n" +
	"🛠 <b>Commands you can use in group:</b>\n" +
	"/forcefetch — Get jobs instantly\n" +
	"/test — Check bot status\n" +
	"/stats — View statistics"

const notVerifiedText = "❌ <b>Not Verified!</b>\n\nJoin the channel first then verify."

const activatedText = "👋 <b>GovtJobsBot Activated!</b> 🎉\n\n" +
	"✅ Auto-posting every 30 min:\n" +
	"📋 Govt Jobs | 📅 Exams | 🎫 Admit Cards | ⚠️ Alerts\n\n" +
	"🤖 <b>AI-Powered</b> — Full details auto-filled!\n\n" +
	"🛠 <b>Admin Commands:</b>\n" +
	"/forcefetch — Fetch jobs now\n" +
	"/test — Test bot\n" +
	"/stats — Statistics"

const connectedText = "✅ <b>GovtJobsBot connected!</b>\n\nAuto-posting activated 🎉"

const addChatUsage = "Usage: /addchat <chat_id> <title>\n\n" +
	"To get channel ID:\n" +
	"1. Forward a message from your channel to @userinfobot\n" +
	"2. It will show the channel ID (negative number like -1001234567890)"

// atUsername normalizes a username to the @-prefixed form the Telegram API
// resolves; configuration may carry either form.
func atUsername(name string) string {
	return "@" + strings.TrimPrefix(name, "@")
}

func channelURL() string {
	return "https://t.me/" + strings.TrimPrefix(cfg.Get().ChannelUsername, "@")
}

func ownerURL() string {
	return "https://t.me/" + strings.TrimPrefix(cfg.Get().OwnerUsername, "@")
}

func addToChannelURL() string {
	username := strings.TrimPrefix(cfg.Get().BotUsername, "@")
	return fmt.Sprintf("https://t.me/%s?startchannel=true&admin=post_messages+edit_messages+delete_messages", username)
}

func welcomeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.URL("📢 Join Official Channel 🔔", channelURL())),
		markup.Row(
			markup.URL("➕ Add Bot to Channel", addToChannelURL()),
			markup.URL("👑 Owner", ownerURL()),
		),
		markup.Row(markup.Data("✅ Tap Here to Verify ✅", verifyUnique)),
	)
	return markup
}

func verifiedMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.URL("➕ Add Bot to Your Channel", addToChannelURL())),
		markup.Row(markup.URL("👑 Contact Owner", ownerURL())),
	)
	return markup
}

func retryMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.URL("📢 Join Channel 🔔", channelURL())),
		markup.Row(markup.Data("🔄 Try Again", verifyUnique)),
	)
	return markup
}

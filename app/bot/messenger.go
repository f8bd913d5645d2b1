package bot

import (
	"context"

	tele "gopkg.in/telebot.v3"

	"github.com/govtjobs-alert/bot/app/render"
)

// SendPost delivers a rendered update to a destination chat as HTML with an
// inline keyboard of action buttons.
func (b *Bot) SendPost(ctx context.Context, chatID int64, body string, actions []render.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := htmlOpts()
	opts.ReplyMarkup = inlineActions(actions)
	_, err := b.tb.Send(tele.ChatID(chatID), body, opts)
	return err
}

// SendText delivers a plain HTML message without buttons.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.tb.Send(tele.ChatID(chatID), text, &tele.SendOptions{ParseMode: tele.ModeHTML})
	return err
}

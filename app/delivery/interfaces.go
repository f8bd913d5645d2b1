package delivery

import (
	"context"

	"github.com/govtjobs-alert/bot/app/feed"
	"github.com/govtjobs-alert/bot/app/render"
)

// Aggregator produces the new items of a cycle.
type Aggregator interface {
	Run(ctx context.Context) []feed.Item
}

// Enricher fills an item's detail fields best-effort. Must not fail: on
// provider trouble it returns the item with Enriched=false.
type Enricher interface {
	Run(ctx context.Context, item feed.Item) feed.Item
}

// Messenger is the outbound half of the chat platform.
type Messenger interface {
	SendPost(ctx context.Context, chatID int64, body string, actions []render.Action) error
	SendText(ctx context.Context, chatID int64, text string) error
}

package watcher

import (
	"log/slog"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/ws"
)

// bannerTTLMillis is how long dashboard clients keep the banner on screen
// before auto-dismissing it.
const bannerTTLMillis = 6000

// HubNotifier pushes alerts to connected dashboard clients through the
// websocket hub.
type HubNotifier struct {
	Hub *ws.Hub
}

type bannerPayload struct {
	Type          string         `json:"type"`
	Orders        []models.Order `json:"orders"`
	AutoDismissMs int            `json:"auto_dismiss_ms"`
}

type soundPayload struct {
	Type string `json:"type"`
}

func (n *HubNotifier) Banner(orders []models.Order) {
	n.Hub.BroadcastJSON(bannerPayload{
		Type:          "new_orders",
		Orders:        orders,
		AutoDismissMs: bannerTTLMillis,
	})
}

func (n *HubNotifier) Sound() {
	n.Hub.BroadcastJSON(soundPayload{Type: "sound"})
}

// LogNotifier writes alerts to the structured log. Used by the watch CLI
// command and as a fallback when no hub is attached.
type LogNotifier struct {
	Log *slog.Logger
}

func (n *LogNotifier) Banner(orders []models.Order) {
	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	n.Log.Info("new orders", "count", len(orders), "order_ids", ids)
}

func (n *LogNotifier) Sound() {
	n.Log.Info("new order chime")
}

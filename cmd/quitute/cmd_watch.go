package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/watcher"
	"github.com/quitute/quitute/config"
	"github.com/quitute/quitute/pkg/auth"
	"github.com/quitute/quitute/pkg/cache"
	"github.com/quitute/quitute/pkg/logger"
)

var (
	watchBaseURL  string
	watchToken    string
	watchInterval time.Duration
)

func init() {
	watchCmd.Flags().StringVar(&watchBaseURL, "base-url", "http://localhost:8080", "base URL of the API server")
	watchCmd.Flags().StringVar(&watchToken, "token", "", "supplier JWT (required)")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "poll interval (defaults to WATCHER_POLL_SECONDS)")
	watchCmd.MarkFlagRequired("token") //nolint:errcheck
}

// quitute watch — poll the API for new orders and log alerts.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a supplier's order feed and alert on new orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		claims, err := auth.ValidateToken(watchToken)
		if err != nil {
			return fmt.Errorf("watch: invalid token: %w", err)
		}
		if claims.Role != auth.RoleSupplier {
			return fmt.Errorf("watch: token is not a supplier token")
		}

		interval := watchInterval
		if interval <= 0 {
			interval = config.WatcherPollInterval()
		}

		var prefs watcher.PrefStore = watcher.NewMemoryPrefStore()
		if err := cache.Connect(); err == nil {
			prefs = watcher.RedisPrefStore{}
		}

		w := watcher.New(
			claims.AccountID,
			apiFetcher(watchBaseURL, watchToken),
			&watcher.LogNotifier{Log: logger.L},
			prefs,
			interval,
		)

		logger.Info("watch: polling", "supplier_id", claims.AccountID, "interval", interval.String())
		w.Start()
		defer w.Stop()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		return nil
	},
}

// apiFetcher returns a Fetcher that reads today's orders over the HTTP API.
func apiFetcher(baseURL, token string) watcher.Fetcher {
	client := &http.Client{Timeout: 10 * time.Second}

	return func() ([]models.Order, error) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/api/supplier/orders", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("watch: fetch orders: status %d", resp.StatusCode)
		}

		var body struct {
			Data []models.Order `json:"data"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, err
		}
		return body.Data, nil
	}
}

// Package notify posts compilation results to caller-provided webhooks.
package notify

import (
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"supercut/log"
)

type Notifier struct {
	client *resty.Client
}

func NewNotifier() *Notifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)
	return &Notifier{client: client}
}

// CompilationFinished posts the final task state to callbackURL. Webhook
// delivery is best effort: failures are logged, never surfaced to the caller.
func (n *Notifier) CompilationFinished(callbackURL string, payload any) {
	if callbackURL == "" {
		return
	}

	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(callbackURL)
	if err != nil {
		log.GetLogger().Warn("compilation webhook delivery failed",
			zap.String("url", callbackURL),
			zap.Error(err))
		return
	}
	if resp.IsError() {
		log.GetLogger().Warn("compilation webhook rejected",
			zap.String("url", callbackURL),
			zap.Int("status", resp.StatusCode()))
		return
	}

	log.GetLogger().Info("compilation webhook delivered",
		zap.String("url", callbackURL),
		zap.Int("status", resp.StatusCode()))
}

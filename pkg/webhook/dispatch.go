package webhook

import (
	"context"
	"time"

	"github.com/ccollicutt/mloxrules/pkg/config"
	"github.com/ccollicutt/mloxrules/pkg/logging"
	"github.com/ccollicutt/mloxrules/pkg/output"
)

// Delivery records the outcome of one webhook.
type Delivery struct {
	Name     string
	Skipped  bool
	Response *Response
}

// ShouldFire decides whether a webhook with the given trigger fires for a
// report. Unknown triggers behave like on_issues.
func ShouldFire(trigger config.WebhookTrigger, hasIssues bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasIssues
	}
}

// Dispatch sends report to every hook whose trigger allows it. Failures are
// logged and returned, never fatal.
func Dispatch(ctx context.Context, client *Client, hooks []config.WebhookConfig, report *output.Report) []Delivery {
	logger := logging.GetLogger("webhook")

	deliveries := make([]Delivery, 0, len(hooks))
	for _, wh := range hooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if !ShouldFire(wh.Trigger, report.HasIssues()) {
			logger.Debug().Str("webhook", name).Str("trigger", string(wh.Trigger)).Msg("webhook skipped")
			deliveries = append(deliveries, Delivery{Name: name, Skipped: true})
			continue
		}

		resp := client.Send(ctx, report, SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: time.Duration(wh.Timeout),
		})

		if resp.Success() {
			logger.Info().Str("webhook", name).Int("status", resp.StatusCode).Dur("duration", resp.Duration).Msg("webhook sent")
		} else {
			logger.Warn().Str("webhook", name).Err(resp.Error).Msg("webhook failed")
		}
		deliveries = append(deliveries, Delivery{Name: name, Response: resp})
	}

	return deliveries
}

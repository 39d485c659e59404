package consumer

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"donation-service/internal/service"
)

// Consumer applies donation events to the campaign ledger: any recorded or
// removed donation triggers a full raised-amount recompute, closing the
// staleness window between a donation insert and the next explicit recompute.
type Consumer struct {
	campaignSvc *service.CampaignService
	reader      *kafka.Reader
}

func NewConsumer(campaignSvc *service.CampaignService, reader *kafka.Reader) *Consumer {
	return &Consumer{campaignSvc: campaignSvc, reader: reader}
}

// Start blocks reading donation events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error().Msgf("Error reading message: %v", err)
			continue
		}

		c.processMessage(ctx, msg)
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	// key -> "donation.recorded.<id>" or "donation.removed.<id>"
	parts := strings.Split(string(msg.Key), ".")
	if len(parts) < 2 {
		log.Error().Msgf("Unknown event key: %s", string(msg.Key))
		return
	}

	switch parts[1] {
	case "recorded", "removed":
		if _, err := c.campaignSvc.RecomputeRaised(ctx); err != nil {
			log.Error().Msgf("Error recomputing raised amounts: %v", err)
		}
	default:
		log.Error().Msgf("Unknown donation event: %s", parts[1])
	}
}

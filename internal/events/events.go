// Package events announces marketplace activity on an in-process bus so that
// side concerns (activity log, metrics) stay out of the services.
package events

import (
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/metrics"
	"github.com/oceanofgigs/engine/pkg/logger"
)

const (
	TopicGigPosted                = "marketplace:gig_posted"
	TopicApplicationSubmitted     = "marketplace:application_submitted"
	TopicApplicationStatusChanged = "marketplace:application_status_changed"
	TopicItemSaved                = "marketplace:item_saved"
)

type GigPosted struct {
	GigID       int64
	RecruiterID int64
	At          time.Time
}

type ApplicationSubmitted struct {
	ApplicationID int64
	GigID         int64
	StudentID     int64
	At            time.Time
}

type ApplicationStatusChanged struct {
	ApplicationID int64
	Status        string
}

type ItemSaved struct {
	SavedItemID int64
	UserID      int64
}

// NewBus returns a synchronous bus.
func NewBus() EventBus.Bus {
	return EventBus.New()
}

// SubscribeActivityLog logs every marketplace event and counts it.
func SubscribeActivityLog(bus EventBus.Bus) error {
	subs := map[string]any{
		TopicGigPosted: func(e GigPosted) {
			record("gig_posted", zap.Int64("gig_id", e.GigID), zap.Int64("recruiter_id", e.RecruiterID))
		},
		TopicApplicationSubmitted: func(e ApplicationSubmitted) {
			record("application_submitted", zap.Int64("application_id", e.ApplicationID), zap.Int64("gig_id", e.GigID), zap.Int64("student_id", e.StudentID))
		},
		TopicApplicationStatusChanged: func(e ApplicationStatusChanged) {
			record("application_status_changed", zap.Int64("application_id", e.ApplicationID), zap.String("status", e.Status))
		},
		TopicItemSaved: func(e ItemSaved) {
			record("item_saved", zap.Int64("saved_item_id", e.SavedItemID), zap.Int64("user_id", e.UserID))
		},
	}
	for topic, fn := range subs {
		if err := bus.Subscribe(topic, fn); err != nil {
			return err
		}
	}
	return nil
}

func record(kind string, fields ...zap.Field) {
	metrics.MarketplaceEventsTotal.WithLabelValues(kind).Inc()
	logger.L().Info("marketplace activity", append([]zap.Field{zap.String("event", kind)}, fields...)...)
}

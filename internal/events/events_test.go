package events

import (
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oceanofgigs/engine/internal/metrics"
	"github.com/oceanofgigs/engine/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Set(zap.NewNop())
	os.Exit(m.Run())
}

func TestActivityLogCountsEvents(t *testing.T) {
	bus := NewBus()
	require.NoError(t, SubscribeActivityLog(bus))

	before := testutil.ToFloat64(metrics.MarketplaceEventsTotal.WithLabelValues("application_submitted"))
	bus.Publish(TopicApplicationSubmitted, ApplicationSubmitted{ApplicationID: 1, GigID: 2, StudentID: 3})
	bus.Publish(TopicApplicationSubmitted, ApplicationSubmitted{ApplicationID: 2, GigID: 2, StudentID: 4})
	after := testutil.ToFloat64(metrics.MarketplaceEventsTotal.WithLabelValues("application_submitted"))

	assert.Equal(t, 2.0, after-before)
	assert.True(t, bus.HasCallback(TopicGigPosted))
	assert.True(t, bus.HasCallback(TopicItemSaved))
}

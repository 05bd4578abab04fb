package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	t.Run("Transitions Counted Per Role And State", func(t *testing.T) {
		m := New(prometheus.NewRegistry())

		m.RecordTransition("donor", "Validating")
		m.RecordTransition("donor", "Validating")
		m.RecordTransition("patient", "Done")

		assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrationTransitionsTotal.WithLabelValues("donor", "Validating")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationTransitionsTotal.WithLabelValues("patient", "Done")))
	})

	t.Run("Separate Registries Do Not Collide", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewNop()
			NewNop()
		})
	})

	t.Run("Notifications Counted", func(t *testing.T) {
		m := NewNop()

		m.RecordNotification("donor", "sent")

		assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("donor", "sent")))
	})
}

package metrics

import (
	"context"

	"github.com/railops/yardwheel/core/events"
	"github.com/railops/yardwheel/internal/eventbus"
)

// WarningRecorder counts warnings from the diagnostic stream. Implemented by
// PromSink.
type WarningRecorder interface {
	RecordWarning()
}

// StartEventCollector subscribes to the event bus and forwards warning
// events to the sink. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, rec WarningRecorder) {
	if bus == nil || rec == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if _, isWarning := ev.(events.WarningEvent); isWarning {
					rec.RecordWarning()
				}
			}
		}
	}()
}

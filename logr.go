package cachedprop

import "github.com/go-logr/logr"

// LogObserver returns an Observer that writes events to log. Failed
// computations are logged as errors; everything else at verbosity 1.
func LogObserver(log logr.Logger) Observer {
	return ObserverFunc(func(e EventData) {
		if e.Event == EventError {
			log.Error(e.Err, "cached property computation failed", "property", e.Name)
			return
		}
		log.V(1).Info("cached property event", "event", e.Event.String(), "property", e.Name)
	})
}

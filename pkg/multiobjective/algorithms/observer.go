package algorithms

import (
	"github.com/go-logr/logr"
)

// Observer receives a snapshot after every generation of a run.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) Observe(s Snapshot) {
	f(s)
}

// LoggingObserver logs one line per generation at verbosity 2.
func LoggingObserver(logger logr.Logger) Observer {
	return ObserverFunc(func(s Snapshot) {
		logger.V(2).Info("Generation complete", "generation", s.Generation, "fronts", s.Fronts,
			"best", s.Best, "evaluations", s.Evaluations)
	})
}

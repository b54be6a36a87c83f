// Package behavior provides the cross-cutting pipeline behaviors wrapped
// around every handler registered with the mediator.
//
// The usual order, outermost first:
//
//	m := messaging.New(
//	    behavior.ExceptionHandling(logger),
//	    behavior.Telemetry(metrics),
//	    behavior.Logging(logger),
//	    behavior.Validation(validators, logger, 4),
//	)
//
// ExceptionHandling must be outermost so that faults raised by the other
// behaviors are wrapped as well.
package behavior

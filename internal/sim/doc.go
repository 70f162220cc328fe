// Package sim owns the long-lived simulation context: validated
// parameters, the oscillator state, the run/pause machine, the bounded
// resonance history, and the Session that ties them together for a host
// tick loop.
//
// # Example
//
//	sess, _ := sim.NewSession(sim.DefaultParameters())
//	for range ticker {
//		_ = sess.Tick()
//		render(sess.Phases(), sess.Resonance())
//	}
//
// # Thread Safety
//
// A Session is single-threaded: one external scheduler drives
// Tick, and readers only ever see snapshot copies. Ensemble is the one
// concurrent entry point and keeps every member session goroutine-local.
package sim

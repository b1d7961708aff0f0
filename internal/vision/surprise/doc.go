// Package surprise owns the per-frame surprise computation.
//
// Responsibilities: the Engine orchestrator (one belief surface per active
// channel, lazy (re)initialization on geometry change, validated runtime
// configuration) and the Aggregator that reduces per-pixel, per-channel
// divergence maps to one scalar in wows.
//
// The Engine is single-threaded by design: Process mutates belief surfaces
// in place with no internal locking and must not be called reentrantly.
// One engine instance per video stream.
package surprise

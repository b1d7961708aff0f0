// Package features provides in-repo stand-ins for the external
// feature-extraction collaborator.
//
// Real deployments hand the engine an extractor backed by the camera
// pipeline. This package carries two substitutes: Synthetic, a cheap
// luma-derived extractor for the simulator CLI, and Stub, a scripted
// extractor for tests. Neither attempts to be a faithful conspicuity
// model; they only have to produce plausible, positive feature maps with
// the right shapes and channel semantics.
package features

// Package vision owns the shared domain types for the surprise pipeline.
//
// Responsibilities: frame and feature-map containers, the feature channel
// alphabet and channel-set parsing, the Extractor collaborator interface,
// and the error taxonomy shared by the belief and surprise packages.
// Key types: Frame, FeatureSet, Channel, ChannelSet, Extractor.
//
// Dependency rule: vision depends on nothing inside this repository; the
// belief and surprise packages depend on it, never the reverse.
package vision

// Package services implements the core use cases: text segmentation,
// candidate classification, the Leitner review engine, the capture
// pipeline, and entry/settings management. Services depend only on domain
// types and driven ports.
package services

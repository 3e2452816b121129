// Package ports defines the interfaces that connect the render pipeline to
// infrastructure adapters.
//
// The pipeline depends only on these interfaces; adapters under
// internal/adapters provide the concrete implementations (PNG encoding
// today). This keeps image persistence swappable and lets tests substitute
// an in-memory encoder for the real codec.
package ports

// Package smooth provides single-sample recursive smoothing filters for noisy
// scalar signals.
//
// Supported filters:
//   - EMA: exponential moving average, value = a*x + (1-a)*value.
//   - RMS: exponential average in the squared domain followed by a square
//     root. Tracks signal magnitude and is never negative.
//   - Asymmetric: EMA with separate coefficients for rising and falling
//     input, e.g. fast attack with slow release.
//
// All filters are stateful and deterministic. Each instance serves one signal
// channel and is not safe for concurrent use; use one instance per channel.
// Coefficients must lie in the closed interval [0, 1] and are fixed at
// construction.
package smooth

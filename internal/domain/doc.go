// Package domain defines the core domain types and interfaces.
//
// One file per concept (user.go, channel.go, feedback.go, performance.go, errors.go)
// holding the model types and the repository contracts implemented by the adapters.
// No implementation code, just contracts.
package domain

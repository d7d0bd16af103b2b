// Package app provides the application service layer.
//
// Orchestrates use cases: registration and login, channel management, feedback
// submission with sentiment scoring, and the performance metrics relay.
// Sits between HTTP handlers and domain repositories. Depends on domain interfaces, not concrete implementations.
package app

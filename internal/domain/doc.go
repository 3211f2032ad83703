// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/task). This root package
// holds the sentinel errors and the validation failure type that every layer
// above the repository speaks in.
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration
//   - HistoryStore: Conversion history persistence
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FamilyLoader: Loads user-defined unit families from disk. Without
//     it, only the built-in families are available.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or family package
package driven

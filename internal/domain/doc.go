// Package domain contains the core entities and wire payloads for oledanim.
//
// This package has no dependencies on infrastructure concerns (HTTP, file
// system, logging) and holds only the values the rest of the program passes
// around.
//
// # Entities
//
//   - [Identity]: the game/event pair every GameSense call is correlated by
//   - [Animation]: an immutable, cyclic sequence of text frames
//   - [GameMetadata], [EventRegistration], [EventBinding], [GameEvent]:
//     JSON bodies for the four GameSense endpoints
package domain

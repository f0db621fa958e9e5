package model

// EventType identifies the type of event
type EventType string

const (
	EventPieceSpawned  EventType = "piece_spawned"
	EventPieceLocked   EventType = "piece_locked"
	EventRowsCleared   EventType = "rows_cleared"
	EventGameOver      EventType = "game_over"
	EventGameRestarted EventType = "game_restarted"
)

// Event is emitted by the engine whenever the game changes beyond a simple move
type Event struct {
	Type    EventType
	Payload any // Type-specific data
}

// PieceSpawnedPayload contains data for piece spawned events
type PieceSpawnedPayload struct {
	Tag      PieceTag
	Position Position
	Next     PieceTag
}

// PieceLockedPayload contains data for piece locked events
type PieceLockedPayload struct {
	Tag      PieceTag
	Position Position
}

// RowsClearedPayload contains data for rows cleared events
type RowsClearedPayload struct {
	Lines  int
	Points int
	Score  int // Total after this sweep
}

// GameOverPayload contains data for game over events
type GameOverPayload struct {
	Score int
}

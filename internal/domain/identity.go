package domain

// Default identity values registered with the GameSense daemon.
const (
	DefaultGame        = "CUSTOM_OLED_ANIMATION"
	DefaultEvent       = "ANIMATION"
	DefaultDisplayName = "Custom OLED Animation"
	DefaultDeveloper   = "CDXX420"
)

// Identity names the custom game and event all GameSense calls refer to.
// It does not change for the lifetime of the process.
type Identity struct {
	// Game is the GameSense game id (upper-case, A-Z 0-9 _ -)
	Game string

	// Event is the event id registered under Game
	Event string

	// DisplayName is shown in the SteelSeries Engine UI
	DisplayName string

	// Developer is shown next to the display name
	Developer string
}

// DefaultIdentity returns the identity used when nothing is configured.
func DefaultIdentity() Identity {
	return Identity{
		Game:        DefaultGame,
		Event:       DefaultEvent,
		DisplayName: DefaultDisplayName,
		Developer:   DefaultDeveloper,
	}
}

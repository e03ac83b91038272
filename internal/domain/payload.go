package domain

// Handler binding values for a text-capable OLED zone.
const (
	DeviceTypeScreened = "screened"
	ZoneOne            = "one"
	ModeScreen         = "screen"
)

// GameMetadata is the body of POST /game_metadata.
type GameMetadata struct {
	Game            string `json:"game"`
	GameDisplayName string `json:"game_display_name"`
	Developer       string `json:"developer"`
}

// EventRegistration is the body of POST /register_game_event.
type EventRegistration struct {
	Game          string `json:"game"`
	Event         string `json:"event"`
	ValueOptional bool   `json:"value_optional"`
}

// EventBinding is the body of POST /bind_game_event.
type EventBinding struct {
	Game     string    `json:"game"`
	Event    string    `json:"event"`
	Handlers []Handler `json:"handlers"`
}

// Handler describes where and how the daemon renders an event.
type Handler struct {
	DeviceType string        `json:"device-type"`
	Zone       string        `json:"zone"`
	Mode       string        `json:"mode"`
	Datas      []HandlerData `json:"datas"`
}

// HandlerData describes one screen data frame. Prefix is always serialized,
// an empty prefix means the event value is shown as-is.
type HandlerData struct {
	HasText bool   `json:"has-text"`
	Prefix  string `json:"prefix"`
}

// GameEvent is the body of POST /game_event.
type GameEvent struct {
	Game  string    `json:"game"`
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

// EventData carries the event value.
type EventData struct {
	Value string `json:"value"`
}

// Metadata returns the registration body for id.
func (id Identity) Metadata() GameMetadata {
	return GameMetadata{
		Game:            id.Game,
		GameDisplayName: id.DisplayName,
		Developer:       id.Developer,
	}
}

// Registration returns the event registration body for id.
// The event value is optional so frames can be any text.
func (id Identity) Registration() EventRegistration {
	return EventRegistration{
		Game:          id.Game,
		Event:         id.Event,
		ValueOptional: true,
	}
}

// ScreenBinding binds the event to zone one of a screened device,
// rendering the raw event value as text.
func (id Identity) ScreenBinding() EventBinding {
	return EventBinding{
		Game:  id.Game,
		Event: id.Event,
		Handlers: []Handler{
			{
				DeviceType: DeviceTypeScreened,
				Zone:       ZoneOne,
				Mode:       ModeScreen,
				Datas:      []HandlerData{{HasText: true, Prefix: ""}},
			},
		},
	}
}

// FrameEvent wraps frame as a game event for id.
func (id Identity) FrameEvent(frame Frame) GameEvent {
	return GameEvent{
		Game:  id.Game,
		Event: id.Event,
		Data:  EventData{Value: frame},
	}
}

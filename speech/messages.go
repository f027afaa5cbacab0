package speech

// Bubble Tea messages emitted by the playback layer. The UI forwards
// controller and catalog callbacks into its program loop as these.

// StateMsg reports a playback state transition.
type StateMsg struct {
	State State
}

// NoticeMsg carries a user-facing playback message, usually an error
// explanation.
type NoticeMsg struct {
	Text string
}

// VoicesMsg reports that the voice catalog became ready.
type VoicesMsg struct {
	Voices []Voice
}

package constant

// Module labels for structured log entries.
const (
	ModuleChat     = "chat"
	ModuleChatRoom = "chat_room"
	ModuleSpeech   = "speech"
	ModuleActivity = "room_activity"
)

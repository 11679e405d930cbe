package domain

// Business validation constants
const (
	MaxAssistantTypes = 16
	MaxSlotsPerType   = 1000
	MaxCommentLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Status messages written onto reservations by the allocation engine
const (
	MsgNoAvailableSlots     = "No available assistant slots (%s)"
	MsgResourceNotFound     = "Internal error, resource not found (%s)"
	MsgPeriodNotOpen        = "Period is not open"
	MsgAssistantInactivated = "Removed because assistant is inactivated"
	MsgAssistantDeleted     = "Removed because assistant is deleted"
)

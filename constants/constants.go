package constants

// Ticket status
const (
	TicketPending   = "pending"
	TicketConfirmed = "confirmed"
	TicketFailed    = "failed"
)

// Purchase channel
const (
	ChannelOnline        = "online"
	ChannelPhysicalBatch = "physical_batch"
)

// Verification reasons
const (
	ReasonNotFound         = "not found"
	ReasonAlreadyUsed      = "already used"
	ReasonNotActivated     = "not activated"
	ReasonBatchDeactivated = "batch deactivated"
)

// Response messages
const (
	ERROR_INPUT          = "INVALID_INPUT"
	ERROR_INTERNAL_ERROR = "INTERNAL_ERROR"
	ERROR_UPSTREAM       = "UPSTREAM_ERROR"
	MISSING_LOGIN_INPUT  = "MISSING_LOGIN_INPUT"
	INVALID_CREDENTIALS  = "INVALID_CREDENTIALS"
	UNAUTHORIZED         = "UNAUTHORIZED"
	NOT_FOUND            = "NOT_FOUND"
)

// Redis channel carrying successful verifications for the live admin feed.
const CheckinChannel = "checkins"

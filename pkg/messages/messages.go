package messages

const (
	BadStatusCodeMsg      = "API returned status code %d on URL %s"
	BackendFailedMsg      = "API request failed"
	FailedToParseMsg      = "failed to parse API response"
	RequestFailedMsg      = "API request failed on URL %s"
	NotFoundHint          = "check the spelling of the Riot ID and the selected region"
	ParticipantNotFound   = "player is not a participant of this match"
	SupersededRequest     = "request superseded by a newer search"
	TransientFailure      = "the stats backend is unavailable, try again"
	InvalidRiotID         = "riot id must be in the Name#Tag format"
	InvalidRegion         = "unsupported region %q"
	InvalidGameName       = "game name must have 1 to 16 letters, digits or spaces"
	InvalidTagLine        = "tag must have 2 to 5 letters or digits"
	InvalidPagination     = "count must be between 1 and 100 and offset can't be negative"
	InvalidQueueID        = "queue id must be a number"
	InvalidItemIDMsg      = "invalid item id %d, expected a positive integer"
	OperationInProgress   = "operation already in progress, please wait"
	VersionFetchFailedMsg = "couldn't refresh the Data Dragon version: %v"
)

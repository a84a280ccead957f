package member

import "encoding/json"

// SyncPageRequest is one page of raw member records pulled from the member API.
// Members stay raw so a malformed record only skips itself.
type SyncPageRequest struct {
	PageNumber int               `json:"pageNumber" binding:"min=0"`
	Online     bool              `json:"online"`
	Members    []json.RawMessage `json:"members" binding:"required"`
}

type SyncPageResponse struct {
	PageNumber       int      `json:"pageNumber"`
	Processed        int      `json:"processed"`
	Skipped          int      `json:"skipped"`
	SkippedMemberIDs []string `json:"skippedMemberIds"`
}

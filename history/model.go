package history

import "errors"

// Entry is one recorded replace run. Entries are immutable once
// created.
type Entry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	InputURLs string `json:"inputUrls"`
	OldDomain string `json:"oldDomain"`
	NewDomain string `json:"newDomain"`
}

var ErrNotFound = errors.New("history entry not found")

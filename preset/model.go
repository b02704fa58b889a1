package preset

import "errors"

// Preset is a user-named source/target domain pair.
type Preset struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OldDomain string `json:"oldDomain"`
	NewDomain string `json:"newDomain"`
}

var ErrNameTaken = errors.New("preset name already in use")
var ErrNotFound = errors.New("preset not found")
var ErrMissingField = errors.New("preset name and both domains are required")

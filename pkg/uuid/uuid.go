package uuid

import "github.com/segmentio/ksuid"

// NewUUID returns a sortable unique id.
func NewUUID() string {
	return ksuid.New().String()
}

package config

import (
	"fmt"
	"strconv"
)

// SchemaVersion is the protocol version that is embedded in the
// websocket path of the endpoint (e.g. the "2" in "/ws/2").
type SchemaVersion int

const (
	SchemaVersionInvalid SchemaVersion = iota
	SchemaV1
	SchemaV2
)

// LatestSchemaVersion is used when no version was set explicitly.
const LatestSchemaVersion = SchemaV2

func (v SchemaVersion) String() string {
	return strconv.Itoa(int(v))
}

func (v SchemaVersion) Validate() error {
	if v != SchemaV1 && v != SchemaV2 {
		return fmt.Errorf("%w: unknown schema version: %d", ErrInvalidArgument, v)
	}

	return nil
}

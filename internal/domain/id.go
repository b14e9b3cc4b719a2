package domain

import (
	"fmt"
	"strconv"
)

// EntityID - opaque stable handle for one game object.
// IDs are allocated by the Store and never reused within a session.
type EntityID uint64

// NoEntity is the zero EntityID; the Store never hands it out.
const NoEntity EntityID = 0

// MarshalJSON serializes the ID as a string, since JS clients lose
// precision on large integers.
func (id EntityID) MarshalJSON() ([]byte, error) {
	s := strconv.FormatUint(uint64(id), 10)
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON parses either a quoted string or a bare number.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = EntityID(val)
	return nil
}

func (id EntityID) String() string {
	return fmt.Sprintf("[#%d]", uint64(id))
}

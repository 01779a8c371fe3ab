package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// ID prefixes per entity
const (
	contactIDPrefix  = "ct-"
	noteIDPrefix     = "cn-"
	reminderIDPrefix = "rm-"
	orderIDPrefix    = "or-"
	folderIDPrefix   = "fl-"
)

// newID derives an id from the current time in milliseconds. Single
// interactive inserts can't collide at this resolution.
func newID(prefix string) string {
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// newBulkID appends a random hex suffix so ids stay unique when many records
// are inserted within the same millisecond (imports, seeds).
func newBulkID(prefix string) (string, error) {
	bytes := make([]byte, 2) // 4 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(bytes)), nil
}

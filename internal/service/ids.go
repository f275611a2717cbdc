package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func newID() string { return uuid.New().String() }

// newOrderCode builds the external-facing booking code, e.g.
// STY-20250915-9F2C41. It never changes once issued.
func newOrderCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("STY-%s-%s", now.UTC().Format("20060102"), suffix)
}

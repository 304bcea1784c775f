package booking

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds the human-facing booking code: "FB", the last eight
// digits of the unix-millisecond clock and four random characters.
// Practically unique, not guaranteed; the bookings table enforces uniqueness.
func NewReference(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = referenceAlphabet[rand.IntN(len(referenceAlphabet))]
	}
	return "FB" + millis + string(suffix)
}

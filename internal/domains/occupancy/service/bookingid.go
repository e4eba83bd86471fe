package service

import (
	"fmt"
	"strings"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

const bookingIDPrefix = "BK"

// newBookingID generates a booking id. The legacy shape is BK plus the last
// six digits of the epoch-millisecond clock; it can collide within the same
// truncation window, which the low-volume manual workflow tolerates, and
// downstream sheet consumers key on it. The random generator is for
// deployments without that constraint.
func (s *serviceImpl) newBookingID() string {
	if s.cfg.App.BookingID.Generator == constant.BookingIDGeneratorRandom {
		hex := strings.ReplaceAll(uuid.NewString(), "-", "")

		return bookingIDPrefix + strings.ToUpper(hex[:6])
	}

	return fmt.Sprintf("%s%06d", bookingIDPrefix, timezone.Now().UnixMilli()%1000000)
}

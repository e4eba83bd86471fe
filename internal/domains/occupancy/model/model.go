package model

import (
	"strconv"
	"strings"
	"time"

	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

const (
	EntityName = "room"
)

// Room sheet column layout. The writer emits rows in exactly this shape; the
// reader tolerates ragged rows from hand-edited sheets.
const (
	ColRoomNumber = iota
	ColRoomName
	ColRoomType
	ColMaxOccupancy
	ColAmenities
	ColDailyRate
	ColWeeklyRate
	ColMonthlyRate
	ColStatus
	ColLastCleaned
	ColMaintenanceNotes
	ColGuestName
	ColCheckInDate
	ColCheckOutDate
	ColNights
	ColGuests
	ColPurpose
	ColSpecialRequests
	ColSource
	ColPaymentStatus
	ColBookingStatus
	ColNotes
	ColBookingID

	ColumnCount
)

// Headers is the canonical header row for a fresh rooms sheet.
var Headers = []string{
	"Room Number", "Room Name", "Room Type", "Max Occupancy", "Amenities",
	"Daily Rate", "Weekly Rate", "Monthly Rate", "Status", "Last Cleaned",
	"Maintenance Notes", "Guest Name", "Check-In Date", "Check-Out Date",
	"Nights", "Guests", "Purpose", "Special Requests", "Source",
	"Payment Status", "Booking Status", "Notes", "Booking ID",
}

const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
	StatusReserved    = "Reserved"
	StatusCleaning    = "Cleaning"

	BookingStatusCheckedIn = "Checked-In"
)

// Descriptive-field defaults used when the existing room row left them blank.
const (
	DefaultRoomName     = "Guest Room"
	DefaultRoomType     = "Standard"
	DefaultMaxOccupancy = "2"
	DefaultAmenities    = "WiFi, TV"
	DefaultWeeklyRate   = ""
	DefaultMonthlyRate  = ""
)

const (
	DefaultNights = 1
)

// ParseRate turns a rate cell like "$1,250.00" into its numeric value.
// Currency symbols, commas and whitespace are stripped; anything that still
// fails to parse silently becomes 0, per the intake form's loose contract.
func ParseRate(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', ' ', '\t':
			return -1
		}

		return r
	}, raw)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return value
}

// ParseNights parses a night-count cell, defaulting to one night.
func ParseNights(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return DefaultNights
	}

	return value
}

// ParseDate accepts the formats the form and the legacy sheet produce. The
// zero time and false are returned when nothing matches.
func ParseDate(raw string) (time.Time, bool) {
	layouts := []string{
		constant.DateLayoutISO,
		constant.DateLayoutUS,
		"01/02/2006",
		time.RFC3339,
	}

	trimmed := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := timezone.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatAmount renders a computed total the way the legacy sheet shows it:
// "$300" rather than "$300.00", keeping native decimal precision.
func FormatAmount(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

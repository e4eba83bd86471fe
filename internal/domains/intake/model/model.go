package model

import "strings"

const (
	EntityName = "submission"

	// ResponseSheetKeyword identifies the check-in response sheet by
	// case-insensitive substring match on the sheet name.
	ResponseSheetKeyword = "guest check-in"
	// FallbackResponseSheet is the default name the form writer gives its
	// third response sheet; some deployments never renamed it.
	FallbackResponseSheet = "Form Responses 3"

	// ProcessedHeader is appended to the response sheet on first commit.
	ProcessedHeader = "Processed"
	// ProcessedStampPrefix prefixes the date in the Processed cell.
	ProcessedStampPrefix = "Checked In - "
)

const (
	FieldGuestName       = "guest_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldRoomNumber      = "room_number"
	FieldCheckInDate     = "check_in_date"
	FieldNights          = "nights"
	FieldGuests          = "guests"
	FieldPurpose         = "purpose"
	FieldSpecialRequests = "special_requests"
)

const (
	DefaultGuestName = "Unknown Guest"
	DefaultNights    = "1"
	DefaultGuests    = "1"
)

// Submission is one guest's check-in request read from the response sheet.
// All values stay as cell strings; parsing happens at commit time.
type Submission struct {
	Timestamp       string `json:"timestamp"`
	GuestName       string `json:"guest_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoomNumber      string `json:"room_number"`
	CheckInDate     string `json:"check_in_date"`
	Nights          string `json:"nights"`
	Guests          string `json:"guests"`
	Purpose         string `json:"purpose"`
	SpecialRequests string `json:"special_requests"`
	// SourceRow is the sheet row the submission came from (row 0 = headers),
	// kept for the processed-marker write-back.
	SourceRow int `json:"source_row"`
}

// HeaderRule maps a response-sheet header to a canonical submission field.
// Rules are tested in order and the first match wins per header. A matching
// header is bound to the rule's field only if the field is still unbound,
// unless the rule is marked Override, which lets an exact header like
// "Guest Name" displace a column that only matched the loose "name" rule.
type HeaderRule struct {
	Field    string
	Override bool
	Match    func(header string) bool
}

// HeaderRules is the ordered classifier for response-sheet headers. Order is
// load-bearing: the guest-name rules must run before the loose "name" and
// "guests" substrings collide.
var HeaderRules = []HeaderRule{
	{Field: FieldGuestName, Override: true, Match: prefix("guest name")},
	{Field: FieldGuestName, Match: contains("name")},
	{Field: FieldEmail, Match: contains("email")},
	{Field: FieldPhone, Match: contains("phone")},
	{Field: FieldRoomNumber, Match: contains("room")},
	{Field: FieldCheckInDate, Match: anyOf(contains("check-in date"), contains("check in"))},
	{Field: FieldNights, Match: contains("nights")},
	{Field: FieldGuests, Match: contains("guests")},
	{Field: FieldPurpose, Match: contains("purpose")},
	{Field: FieldSpecialRequests, Match: contains("requests")},
}

// MapHeaders classifies a header row into field -> column index. Column 0 is
// always the submission timestamp and never participates; headers matching no
// rule are ignored.
func MapHeaders(headers []string) map[string]int {
	mapping := make(map[string]int)

	for col, header := range headers {
		if col == 0 {
			continue
		}

		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}

		for _, rule := range HeaderRules {
			if !rule.Match(normalized) {
				continue
			}

			if _, bound := mapping[rule.Field]; !bound || rule.Override {
				mapping[rule.Field] = col
			}

			break
		}
	}

	return mapping
}

// ProcessedColumn returns the index of the Processed column, or -1.
func ProcessedColumn(headers []string) int {
	for col, header := range headers {
		if strings.EqualFold(strings.TrimSpace(header), ProcessedHeader) {
			return col
		}
	}

	return -1
}

func prefix(p string) func(string) bool {
	return func(header string) bool {
		return strings.HasPrefix(header, p)
	}
}

func contains(sub string) func(string) bool {
	return func(header string) bool {
		return strings.Contains(header, sub)
	}
}

func anyOf(matchers ...func(string) bool) func(string) bool {
	return func(header string) bool {
		for _, match := range matchers {
			if match(header) {
				return true
			}
		}

		return false
	}
}

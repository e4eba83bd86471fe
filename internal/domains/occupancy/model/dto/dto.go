package dto

import (
	"fmt"

	"frontdesk/internal/domains/occupancy/model"
	"frontdesk/internal/tabular"
)

// CheckInCommand is the confirmation form's payload: a submission plus the
// operator-entered room, rate, payment status and source. It lives for one
// commit call.
type CheckInCommand struct {
	Timestamp       string `json:"timestamp"`
	GuestName       string `json:"guest_name"       validate:"required"`
	Email           string `json:"email"            validate:"omitempty,email"`
	Phone           string `json:"phone"`
	RoomNumber      string `json:"room_number"      validate:"required"`
	CheckInDate     string `json:"check_in_date"`
	Nights          string `json:"nights"`
	Guests          string `json:"guests"`
	Purpose         string `json:"purpose"`
	SpecialRequests string `json:"special_requests"`
	DailyRate       string `json:"daily_rate"       validate:"required,numericcell"`
	PaymentStatus   string `json:"payment_status"`
	Source          string `json:"source"`
}

// RejectRequest identifies the submission an operator dismissed. Rejection is
// a panel-local action: nothing is written, so the submission reappears the
// next time the panel opens.
type RejectRequest struct {
	Timestamp string `json:"timestamp"  validate:"required"`
	GuestName string `json:"guest_name"`
	Reason    string `json:"reason"`
}

// RoomSummary is one line of the panel's room picker.
type RoomSummary struct {
	Number       string `json:"number"`
	Name         string `json:"name"`
	DailyRate    string `json:"daily_rate"`
	Status       string `json:"status"`
	DisplayLabel string `json:"display_label"`
	IsAvailable  bool   `json:"is_available"`
}

// FromRow builds a summary from a room sheet row, annotating rather than
// filtering by status: the picker shows every room.
func (r *RoomSummary) FromRow(row []string) {
	r.Number = tabular.Cell(row, model.ColRoomNumber)

	r.Name = tabular.Cell(row, model.ColRoomName)
	if r.Name == "" {
		r.Name = model.DefaultRoomName
	}

	r.DailyRate = tabular.Cell(row, model.ColDailyRate)

	r.Status = tabular.Cell(row, model.ColStatus)
	if r.Status == "" {
		r.Status = model.StatusAvailable
	}

	r.IsAvailable = r.Status == model.StatusAvailable
	r.DisplayLabel = fmt.Sprintf("Room %s - %s (%s/night) [%s]", r.Number, r.Name, r.DailyRate, r.Status)
}

type GetRoomsResponse struct {
	Rooms []RoomSummary `json:"rooms"`
}

func (g *GetRoomsResponse) FromRows(rows [][]string) {
	g.Rooms = []RoomSummary{}

	for _, row := range rows {
		if tabular.Cell(row, model.ColRoomNumber) == "" {
			continue
		}

		var summary RoomSummary
		summary.FromRow(row)
		g.Rooms = append(g.Rooms, summary)
	}
}

// CommitCheckInResponse carries the human-readable confirmation back to the
// panel.
type CommitCheckInResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
}

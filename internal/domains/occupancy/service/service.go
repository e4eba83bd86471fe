package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"frontdesk/config"
	"frontdesk/infras/otel"
	intakeService "frontdesk/internal/domains/intake/service"
	"frontdesk/internal/domains/occupancy/model"
	"frontdesk/internal/domains/occupancy/model/dto"
	"frontdesk/internal/tabular"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Occupancy interface {
	// CommitCheckIn overwrites the matched room row with confirmed occupancy
	// data, then best-effort marks the source submission processed. The room
	// sheet write is the primary mutation and its errors propagate; the
	// marker's do not.
	CommitCheckIn(ctx context.Context, cmd dto.CheckInCommand) (dto.CommitCheckInResponse, error)

	// ListAvailableRooms returns every room annotated with its status.
	// Read failures are swallowed to an empty list.
	ListAvailableRooms(ctx context.Context) dto.GetRoomsResponse
}

type serviceImpl struct {
	store  tabular.Store
	intake intakeService.Intake
	cfg    *config.Config
	otel   otel.Otel
}

func New(store tabular.Store, intake intakeService.Intake, cfg *config.Config, otel otel.Otel) Occupancy {
	return &serviceImpl{
		store:  store,
		intake: intake,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) roomsSheet() string {
	if s.cfg.Store.Sheets.Rooms != "" {
		return s.cfg.Store.Sheets.Rooms
	}

	return constant.DefaultRoomsSheet
}

func (s *serviceImpl) CommitCheckIn(ctx context.Context, cmd dto.CheckInCommand) (res dto.CommitCheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CommitCheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	sheet := s.roomsSheet()

	rows, err := s.store.GetSheet(ctx, sheet)
	if err != nil {
		if errors.Is(err, tabular.ErrSheetNotFound) {
			return res, failure.NotFound("room sheet not found") //nolint:wrapcheck
		}

		log.Error().Err(err).Str("sheet", sheet).Msg("failed to read room sheet")

		return res, fmt.Errorf("failed to read room sheet: %w", err)
	}

	rowIdx := -1
	for i := 1; i < len(rows); i++ {
		if tabular.Cell(rows[i], model.ColRoomNumber) == cmd.RoomNumber {
			rowIdx = i
			break
		}
	}

	if rowIdx < 0 {
		log.Error().Str("room", cmd.RoomNumber).Msg("room not found")

		return res, failure.NotFound(fmt.Sprintf("room %s not found", cmd.RoomNumber)) //nolint:wrapcheck
	}

	updated := s.occupiedRow(rows[rowIdx], cmd)

	if err = s.store.SetRow(ctx, sheet, rowIdx, updated); err != nil {
		log.Error().Err(err).Str("room", cmd.RoomNumber).Msg("failed to write room row")

		return res, fmt.Errorf("failed to write room row: %w", err)
	}

	// Marker failure must not undo the committed room row; MarkProcessed
	// logs and swallows internally.
	s.intake.MarkProcessed(ctx, cmd.Timestamp, cmd.GuestName)

	scope.AddEvent("Guest " + cmd.GuestName + " checked in to room " + cmd.RoomNumber)
	log.Info().
		Str("guest", cmd.GuestName).
		Str("room", cmd.RoomNumber).
		Str("bookingID", updated[model.ColBookingID]).
		Msg("check-in committed")

	res.BookingID = updated[model.ColBookingID]
	res.Message = fmt.Sprintf("%s checked in to room %s", cmd.GuestName, cmd.RoomNumber)

	return res, nil
}

// occupiedRow builds the replacement room row: descriptive fields are carried
// over from the existing row (defaulted when blank), every occupant field is
// replaced so no stale guest data survives the overwrite.
func (s *serviceImpl) occupiedRow(existing []string, cmd dto.CheckInCommand) []string {
	rate := model.ParseRate(cmd.DailyRate)
	nights := model.ParseNights(cmd.Nights)
	total := rate * float64(nights)

	today := timezone.Format(timezone.Now(), constant.DateLayoutUS)

	checkIn, ok := model.ParseDate(cmd.CheckInDate)
	if !ok {
		log.Warn().Str("checkInDate", cmd.CheckInDate).Msg("unparseable check-in date, computing checkout from today")
		checkIn = timezone.Now()
	}
	checkOut := timezone.Format(checkIn.AddDate(0, 0, nights), constant.DateLayoutUS)

	keep := func(col int, fallback string) string {
		if value := tabular.Cell(existing, col); value != "" {
			return value
		}

		return fallback
	}

	row := make([]string, model.ColumnCount)
	row[model.ColRoomNumber] = cmd.RoomNumber
	row[model.ColRoomName] = keep(model.ColRoomName, model.DefaultRoomName)
	row[model.ColRoomType] = keep(model.ColRoomType, model.DefaultRoomType)
	row[model.ColMaxOccupancy] = keep(model.ColMaxOccupancy, model.DefaultMaxOccupancy)
	row[model.ColAmenities] = keep(model.ColAmenities, model.DefaultAmenities)
	row[model.ColDailyRate] = cmd.DailyRate
	row[model.ColWeeklyRate] = keep(model.ColWeeklyRate, model.DefaultWeeklyRate)
	row[model.ColMonthlyRate] = keep(model.ColMonthlyRate, model.DefaultMonthlyRate)
	row[model.ColStatus] = model.StatusOccupied
	row[model.ColLastCleaned] = today
	row[model.ColMaintenanceNotes] = ""
	row[model.ColGuestName] = cmd.GuestName
	row[model.ColCheckInDate] = cmd.CheckInDate
	row[model.ColCheckOutDate] = checkOut
	row[model.ColNights] = strconv.Itoa(nights)
	row[model.ColGuests] = cmd.Guests
	row[model.ColPurpose] = cmd.Purpose
	row[model.ColSpecialRequests] = cmd.SpecialRequests
	row[model.ColSource] = cmd.Source
	row[model.ColPaymentStatus] = cmd.PaymentStatus
	row[model.ColBookingStatus] = model.BookingStatusCheckedIn
	row[model.ColNotes] = fmt.Sprintf("Checked in %s, total %s", cmd.CheckInDate, model.FormatAmount(total))
	row[model.ColBookingID] = s.newBookingID()

	return row
}

func (s *serviceImpl) ListAvailableRooms(ctx context.Context) dto.GetRoomsResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailableRooms")
	defer scope.End()

	res := dto.GetRoomsResponse{Rooms: []dto.RoomSummary{}}

	rows, err := s.store.GetSheet(ctx, s.roomsSheet())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sheet", s.roomsSheet()).Msg("failed to read room sheet, returning no rooms")

		return res
	}

	if len(rows) < 2 {
		return res
	}

	res.FromRows(rows[1:])
	scope.SetAttribute("rooms.count", len(res.Rooms))

	return res
}

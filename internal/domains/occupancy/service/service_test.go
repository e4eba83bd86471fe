package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	intakeService "frontdesk/internal/domains/intake/service"
	"frontdesk/internal/domains/occupancy/model"
	"frontdesk/internal/domains/occupancy/model/dto"
	"frontdesk/internal/domains/occupancy/service"
	"frontdesk/internal/tabular"
	"frontdesk/internal/tabular/memory"
	storeMocks "frontdesk/internal/tabular/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	roomsSheet     = "Rooms"
	responsesSheet = "Guest Check-In Responses"
)

func roomRow(number string, cells map[int]string) []string {
	row := make([]string, model.ColumnCount)
	row[model.ColRoomNumber] = number

	for col, value := range cells {
		row[col] = value
	}

	return row
}

func newFixtureStore() *memory.Store {
	store := memory.New()
	store.Load(responsesSheet, [][]string{
		{"Timestamp", "Guest Name", "Room Number"},
		{"2024-01-05 10:00:00", "Jane Doe", "12"},
	})
	store.Load(roomsSheet, [][]string{
		model.Headers,
		roomRow("11", map[int]string{
			model.ColRoomName:  "Corner Suite",
			model.ColDailyRate: "$150",
			model.ColStatus:    model.StatusAvailable,
		}),
		roomRow("12", map[int]string{
			model.ColRoomName:         "Garden View",
			model.ColRoomType:         "Deluxe",
			model.ColDailyRate:        "$95",
			model.ColStatus:           model.StatusAvailable,
			model.ColMaintenanceNotes: "AC filter due",
		}),
	})

	return store
}

func newOccupancy(store tabular.Store, cfg *config.Config) service.Occupancy {
	intake := intakeService.New(store, cfg, mocks.NewOtel())

	return service.New(store, intake, cfg, mocks.NewOtel())
}

func TestOccupancyService_CommitCheckIn(t *testing.T) {
	store := newFixtureStore()
	svc := newOccupancy(store, &config.Config{})

	cmd := dto.CheckInCommand{
		Timestamp:       "2024-01-05 10:00:00",
		GuestName:       "Jane Doe",
		Email:           "jane@example.com",
		RoomNumber:      "12",
		CheckInDate:     "1/10/2024",
		Nights:          "3",
		Guests:          "2",
		Purpose:         "Vacation",
		SpecialRequests: "Late arrival",
		DailyRate:       "$100",
		PaymentStatus:   "Paid",
		Source:          "Form",
	}

	res, err := svc.CommitCheckIn(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe checked in to room 12", res.Message)
	assert.NotEmpty(t, res.BookingID)

	rows, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)

	row := rows[2]
	require.Len(t, row, model.ColumnCount)

	assert.Equal(t, "12", row[model.ColRoomNumber])
	assert.Equal(t, model.StatusOccupied, row[model.ColStatus])
	assert.Equal(t, model.BookingStatusCheckedIn, row[model.ColBookingStatus])
	assert.Equal(t, "Jane Doe", row[model.ColGuestName])

	// Operator-entered rate and date land verbatim.
	assert.Equal(t, "$100", row[model.ColDailyRate])
	assert.Equal(t, "1/10/2024", row[model.ColCheckInDate])

	// Checkout and total are derived: 1/10 plus 3 nights at $100.
	assert.Equal(t, "1/13/2024", row[model.ColCheckOutDate])
	assert.Equal(t, "3", row[model.ColNights])
	assert.Equal(t, "Checked in 1/10/2024, total $300", row[model.ColNotes])

	// Descriptive fields survive, stale maintenance notes do not.
	assert.Equal(t, "Garden View", row[model.ColRoomName])
	assert.Equal(t, "Deluxe", row[model.ColRoomType])
	assert.Equal(t, "", row[model.ColMaintenanceNotes])

	assert.Equal(t, res.BookingID, row[model.ColBookingID])

	// Other rooms untouched.
	assert.Equal(t, model.StatusAvailable, rows[1][model.ColStatus])

	// The source submission got its processed marker.
	responses, err := store.GetSheet(context.Background(), responsesSheet)
	require.NoError(t, err)
	require.Len(t, responses[0], 4)
	assert.Contains(t, responses[1][3], "Checked In - ")
}

func TestOccupancyService_CommitCheckIn_DefaultsBlankDescriptiveFields(t *testing.T) {
	store := memory.New()
	store.Load(roomsSheet, [][]string{
		model.Headers,
		roomRow("7", nil),
	})

	svc := newOccupancy(store, &config.Config{})

	_, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "John Roe",
		RoomNumber: "7",
		DailyRate:  "80",
	})
	require.NoError(t, err)

	rows, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)

	row := rows[1]
	assert.Equal(t, model.DefaultRoomName, row[model.ColRoomName])
	assert.Equal(t, model.DefaultRoomType, row[model.ColRoomType])
	assert.Equal(t, model.DefaultMaxOccupancy, row[model.ColMaxOccupancy])
	assert.Equal(t, model.DefaultAmenities, row[model.ColAmenities])

	// Blank nights count as one night.
	assert.Equal(t, "1", row[model.ColNights])
	assert.Equal(t, "Checked in , total $80", row[model.ColNotes])
}

func TestOccupancyService_CommitCheckIn_UnparseableCheckInDate(t *testing.T) {
	store := memory.New()
	store.Load(roomsSheet, [][]string{
		model.Headers,
		roomRow("3", nil),
	})

	svc := newOccupancy(store, &config.Config{})

	_, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:   "John Roe",
		RoomNumber:  "3",
		DailyRate:   "60",
		CheckInDate: "whenever",
		Nights:      "2",
	})
	require.NoError(t, err)

	rows, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)

	// Checkout falls back to today plus the stay length.
	want := timezone.Format(timezone.Now().AddDate(0, 0, 2), constant.DateLayoutUS)
	assert.Equal(t, want, rows[1][model.ColCheckOutDate])
	assert.Equal(t, "whenever", rows[1][model.ColCheckInDate])
}

func TestOccupancyService_CommitCheckIn_RoomNotFound(t *testing.T) {
	store := newFixtureStore()
	svc := newOccupancy(store, &config.Config{})

	before, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)

	_, err = svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "Jane Doe",
		RoomNumber: "99",
		DailyRate:  "$100",
	})

	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))

	after, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestOccupancyService_CommitCheckIn_RoomSheetMissing(t *testing.T) {
	svc := newOccupancy(memory.New(), &config.Config{})

	_, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "Jane Doe",
		RoomNumber: "12",
		DailyRate:  "$100",
	})

	require.Error(t, err)
	assert.True(t, failure.IsNotFound(err))
}

func TestOccupancyService_CommitCheckIn_WriteFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storeMocks.NewMockStore(ctrl)
	store.EXPECT().
		GetSheet(gomock.Any(), roomsSheet).
		Return([][]string{
			model.Headers,
			roomRow("12", nil),
		}, nil)
	store.EXPECT().
		SetRow(gomock.Any(), roomsSheet, 1, gomock.Any()).
		Return(errors.New("disk full"))

	svc := newOccupancy(store, &config.Config{})

	_, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "Jane Doe",
		RoomNumber: "12",
		DailyRate:  "$100",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to write room row")
}

func TestOccupancyService_CommitCheckIn_MarkerFailureDoesNotFailCommit(t *testing.T) {
	// The responses sheet is absent, so the marker step cannot succeed. The
	// committed room row must stand regardless.
	store := memory.New()
	store.Load(roomsSheet, [][]string{
		model.Headers,
		roomRow("5", nil),
	})

	svc := newOccupancy(store, &config.Config{})

	res, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "Jane Doe",
		RoomNumber: "5",
		DailyRate:  "$70",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.BookingID)

	rows, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)
	assert.Equal(t, model.StatusOccupied, rows[1][model.ColStatus])
}

func TestOccupancyService_CommitCheckIn_OverwriteReplacesPreviousGuest(t *testing.T) {
	store := newFixtureStore()
	svc := newOccupancy(store, &config.Config{})

	_, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:       "Jane Doe",
		RoomNumber:      "12",
		DailyRate:       "$100",
		SpecialRequests: "Extra towels",
	})
	require.NoError(t, err)

	res, err := svc.CommitCheckIn(context.Background(), dto.CheckInCommand{
		GuestName:  "John Roe",
		RoomNumber: "12",
		DailyRate:  "$110",
	})
	require.NoError(t, err)

	rows, err := store.GetSheet(context.Background(), roomsSheet)
	require.NoError(t, err)

	row := rows[2]
	assert.Equal(t, "John Roe", row[model.ColGuestName])
	assert.Equal(t, "$110", row[model.ColDailyRate])

	// No field of the previous stay leaks into the new one.
	assert.Equal(t, "", row[model.ColSpecialRequests])
	assert.Equal(t, res.BookingID, row[model.ColBookingID])
}

func TestOccupancyService_CommitCheckIn_BookingIDShape(t *testing.T) {
	legacyPattern := regexp.MustCompile(`^BK\d{6}$`)
	randomPattern := regexp.MustCompile(`^BK[0-9A-F]{6}$`)

	tests := []struct {
		name      string
		generator string
		pattern   *regexp.Regexp
	}{
		{name: "legacy clock-derived id", generator: constant.BookingIDGeneratorLegacy, pattern: legacyPattern},
		{name: "random id", generator: constant.BookingIDGeneratorRandom, pattern: randomPattern},
		{name: "unset config falls back to legacy", generator: "", pattern: legacyPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFixtureStore()

			cfg := &config.Config{}
			cfg.App.BookingID.Generator = tt.generator

			res, err := newOccupancy(store, cfg).CommitCheckIn(context.Background(), dto.CheckInCommand{
				GuestName:  "Jane Doe",
				RoomNumber: "12",
				DailyRate:  "$100",
			})

			require.NoError(t, err)
			assert.Regexp(t, tt.pattern, res.BookingID)
		})
	}
}

func TestOccupancyService_ListAvailableRooms(t *testing.T) {
	store := memory.New()
	store.Load(roomsSheet, [][]string{
		model.Headers,
		roomRow("11", map[int]string{
			model.ColRoomName:  "Corner Suite",
			model.ColDailyRate: "$150",
			model.ColStatus:    model.StatusAvailable,
		}),
		roomRow("12", map[int]string{
			model.ColStatus: model.StatusOccupied,
		}),
		roomRow("", nil),
		roomRow("14", nil),
	})

	res := newOccupancy(store, &config.Config{}).ListAvailableRooms(context.Background())

	// Every room with a number is listed, annotated rather than filtered.
	require.Len(t, res.Rooms, 3)

	assert.Equal(t, "11", res.Rooms[0].Number)
	assert.True(t, res.Rooms[0].IsAvailable)
	assert.Equal(t, "Room 11 - Corner Suite ($150/night) [Available]", res.Rooms[0].DisplayLabel)

	assert.Equal(t, "12", res.Rooms[1].Number)
	assert.False(t, res.Rooms[1].IsAvailable)
	assert.Equal(t, model.StatusOccupied, res.Rooms[1].Status)

	// Blank status reads as available and blank name gets the stock label.
	assert.Equal(t, "14", res.Rooms[2].Number)
	assert.True(t, res.Rooms[2].IsAvailable)
	assert.Equal(t, model.DefaultRoomName, res.Rooms[2].Name)
}

func TestOccupancyService_ListAvailableRooms_ReadFailureReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storeMocks.NewMockStore(ctrl)
	store.EXPECT().
		GetSheet(gomock.Any(), roomsSheet).
		Return(nil, errors.New("store offline"))

	res := newOccupancy(store, &config.Config{}).ListAvailableRooms(context.Background())

	assert.Empty(t, res.Rooms)
	assert.NotNil(t, res.Rooms)
}

func TestOccupancyService_CustomRoomsSheetName(t *testing.T) {
	store := memory.New()
	store.Load("Inventory", [][]string{
		model.Headers,
		roomRow("21", nil),
	})

	cfg := &config.Config{}
	cfg.Store.Sheets.Rooms = "Inventory"

	res := newOccupancy(store, cfg).ListAvailableRooms(context.Background())

	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "21", res.Rooms[0].Number)
}

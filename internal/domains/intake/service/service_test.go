package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	intakeModel "frontdesk/internal/domains/intake/model"
	"frontdesk/internal/domains/intake/service"
	"frontdesk/internal/tabular"
	"frontdesk/internal/tabular/memory"
	storeMocks "frontdesk/internal/tabular/mocks"
)

const responsesSheet = "Guest Check-In Responses"

var responseHeaders = []string{
	"Timestamp", "Guest Name", "Email Address", "Phone Number", "Room Number",
	"Check-In Date", "Number of Nights", "Number of Guests", "Purpose of Visit",
	"Special Requests",
}

func newIntake(store tabular.Store) service.Intake {
	return service.New(store, &config.Config{}, mocks.NewOtel())
}

func TestIntakeService_ListPendingCheckIns(t *testing.T) {
	store := memory.New()
	store.Load(responsesSheet, [][]string{
		responseHeaders,
		{"2024-01-05 10:00:00", "Jane Doe", "jane@example.com", "555-0100", "12", "2024-01-10", "3", "2", "Vacation", "Late arrival"},
		{"2024-01-05 11:00:00", "", "", "", "", "", "", "", "", ""},
	})

	pending := newIntake(store).ListPendingCheckIns(context.Background())

	require.Len(t, pending, 2)

	assert.Equal(t, "Jane Doe", pending[0].GuestName)
	assert.Equal(t, "12", pending[0].RoomNumber)
	assert.Equal(t, "2024-01-10", pending[0].CheckInDate)
	assert.Equal(t, "3", pending[0].Nights)
	assert.Equal(t, "2", pending[0].Guests)
	assert.Equal(t, "Late arrival", pending[0].SpecialRequests)
	assert.Equal(t, 1, pending[0].SourceRow)

	// Blank cells fall back to the documented defaults.
	assert.Equal(t, intakeModel.DefaultGuestName, pending[1].GuestName)
	assert.Equal(t, intakeModel.DefaultNights, pending[1].Nights)
	assert.Equal(t, intakeModel.DefaultGuests, pending[1].Guests)
	assert.Equal(t, "", pending[1].Email)
	assert.Equal(t, 2, pending[1].SourceRow)
}

func TestIntakeService_ListPendingCheckIns_SkipsProcessedRows(t *testing.T) {
	store := memory.New()
	store.Load(responsesSheet, [][]string{
		append(append([]string{}, responseHeaders...), "Processed"),
		{"ts-1", "Jane Doe", "", "", "", "", "", "", "", "", "Checked In - 1/5/2024"},
		{"ts-2", "John Roe", "", "", "", "", "", "", "", "", ""},
		{"ts-3", "Max Moe", "", "", "", "", "", "", "", "", "  "},
	})

	pending := newIntake(store).ListPendingCheckIns(context.Background())

	require.Len(t, pending, 2)
	assert.Equal(t, "John Roe", pending[0].GuestName)
	assert.Equal(t, "Max Moe", pending[1].GuestName)
}

func TestIntakeService_ListPendingCheckIns_FallbackSheetName(t *testing.T) {
	store := memory.New()
	store.Load("Form Responses 3", [][]string{
		responseHeaders,
		{"ts-1", "Jane Doe", "", "", "", "", "", "", "", ""},
	})

	pending := newIntake(store).ListPendingCheckIns(context.Background())

	require.Len(t, pending, 1)
	assert.Equal(t, "Jane Doe", pending[0].GuestName)
}

func TestIntakeService_ListPendingCheckIns_ReadFailuresReturnEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		setupMock func(store *storeMocks.MockStore)
	}{
		{
			name: "listing sheets fails",
			setupMock: func(store *storeMocks.MockStore) {
				store.EXPECT().
					ListSheetNames(gomock.Any()).
					Return(nil, errors.New("store offline"))
			},
		},
		{
			name: "no sheet matches the heuristic",
			setupMock: func(store *storeMocks.MockStore) {
				store.EXPECT().
					ListSheetNames(gomock.Any()).
					Return([]string{"Rooms", "Budget"}, nil)
			},
		},
		{
			name: "reading the sheet fails",
			setupMock: func(store *storeMocks.MockStore) {
				store.EXPECT().
					ListSheetNames(gomock.Any()).
					Return([]string{responsesSheet}, nil)
				store.EXPECT().
					GetSheet(gomock.Any(), responsesSheet).
					Return(nil, errors.New("read error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storeMocks.NewMockStore(ctrl)
			tt.setupMock(store)

			pending := newIntake(store).ListPendingCheckIns(context.Background())

			assert.Empty(t, pending)
			assert.NotNil(t, pending)
		})
	}
}

func TestIntakeService_MarkProcessed(t *testing.T) {
	store := memory.New()
	store.Load(responsesSheet, [][]string{
		responseHeaders,
		{"ts-1", "Jane Doe"},
		{"ts-2", "John Roe"},
	})

	svc := newIntake(store)
	svc.MarkProcessed(context.Background(), "ts-2", "John Roe")

	rows, err := store.GetSheet(context.Background(), responsesSheet)
	require.NoError(t, err)

	// The Processed column is appended on demand.
	processedCol := intakeModel.ProcessedColumn(rows[0])
	require.Equal(t, len(responseHeaders), processedCol)

	assert.Contains(t, tabular.Cell(rows[2], processedCol), intakeModel.ProcessedStampPrefix)
	assert.Equal(t, "", tabular.Cell(rows[1], processedCol))

	// Marked rows drop out of the pending list.
	pending := svc.ListPendingCheckIns(context.Background())
	require.Len(t, pending, 1)
	assert.Equal(t, "Jane Doe", pending[0].GuestName)
}

func TestIntakeService_MarkProcessed_NoMatchingRow(t *testing.T) {
	store := memory.New()
	store.Load(responsesSheet, [][]string{
		responseHeaders,
		{"ts-1", "Jane Doe"},
	})

	newIntake(store).MarkProcessed(context.Background(), "ts-missing", "Nobody")

	rows, err := store.GetSheet(context.Background(), responsesSheet)
	require.NoError(t, err)

	processedCol := intakeModel.ProcessedColumn(rows[0])
	require.GreaterOrEqual(t, processedCol, 0)
	assert.Equal(t, "", tabular.Cell(rows[1], processedCol))
}

func TestIntakeService_MarkProcessed_SwallowsWriteErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storeMocks.NewMockStore(ctrl)
	store.EXPECT().
		ListSheetNames(gomock.Any()).
		Return([]string{responsesSheet}, nil)
	store.EXPECT().
		GetSheet(gomock.Any(), responsesSheet).
		Return([][]string{
			append(append([]string{}, responseHeaders...), "Processed"),
			{"ts-1", "Jane Doe"},
		}, nil)
	store.EXPECT().
		SetCell(gomock.Any(), responsesSheet, 1, len(responseHeaders), gomock.Any()).
		Return(errors.New("write failed"))

	// Must not panic or surface the error.
	newIntake(store).MarkProcessed(context.Background(), "ts-1", "Jane Doe")
}

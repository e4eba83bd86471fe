package service

import (
	"context"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/intake/model"
	"frontdesk/internal/tabular"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Intake interface {
	// ListPendingCheckIns returns unprocessed submissions in sheet order.
	// Read failures are swallowed: the caller always gets a list, possibly
	// empty, never an error.
	ListPendingCheckIns(ctx context.Context) []model.Submission

	// MarkProcessed stamps the submission row matching the given timestamp.
	// Best effort; a commit already written to the room sheet must not be
	// failed because the marker could not be written.
	MarkProcessed(ctx context.Context, timestamp, guestName string)

	// FindResponseSheet resolves the response sheet by name heuristic.
	FindResponseSheet(ctx context.Context) (string, error)
}

type serviceImpl struct {
	store tabular.Store
	cfg   *config.Config
	otel  otel.Otel
}

func New(store tabular.Store, cfg *config.Config, otel otel.Otel) Intake {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) FindResponseSheet(ctx context.Context) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindResponseSheet")
	defer scope.End()
	defer scope.TraceIfError(err)

	names, err := s.store.ListSheetNames(ctx)
	if err != nil {
		return "", failure.InternalError(err) //nolint:wrapcheck
	}

	for _, name := range names {
		if strings.Contains(strings.ToLower(name), model.ResponseSheetKeyword) {
			return name, nil
		}
	}

	for _, name := range names {
		if name == model.FallbackResponseSheet {
			return name, nil
		}
	}

	return "", failure.NotFound("check-in response sheet not found") //nolint:wrapcheck
}

func (s *serviceImpl) ListPendingCheckIns(ctx context.Context) []model.Submission {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPendingCheckIns")
	defer scope.End()

	pending := []model.Submission{}

	sheet, err := s.FindResponseSheet(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to locate response sheet, treating as zero pending check-ins")

		return pending
	}

	rows, err := s.store.GetSheet(ctx, sheet)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sheet", sheet).Msg("failed to read response sheet, treating as zero pending check-ins")

		return pending
	}

	if len(rows) < 2 {
		return pending
	}

	mapping := model.MapHeaders(rows[0])
	processedCol := model.ProcessedColumn(rows[0])

	for i := 1; i < len(rows); i++ {
		row := rows[i]

		if processedCol >= 0 && strings.TrimSpace(tabular.Cell(row, processedCol)) != "" {
			continue
		}

		pending = append(pending, submissionFromRow(row, i, mapping))
	}

	scope.SetAttribute("intake.pending", len(pending))

	return pending
}

func (s *serviceImpl) MarkProcessed(ctx context.Context, timestamp, guestName string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkProcessed")
	defer scope.End()

	sheet, err := s.FindResponseSheet(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("guest", guestName).Msg("failed to locate response sheet, submission left unmarked")

		return
	}

	rows, err := s.store.GetSheet(ctx, sheet)
	if err != nil || len(rows) == 0 {
		scope.TraceIfError(err)
		log.Error().Err(err).Str("sheet", sheet).Str("guest", guestName).Msg("failed to read response sheet, submission left unmarked")

		return
	}

	processedCol := model.ProcessedColumn(rows[0])
	if processedCol < 0 {
		if err := s.store.AppendColumn(ctx, sheet, model.ProcessedHeader); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("sheet", sheet).Str("guest", guestName).Msg("failed to append Processed column, submission left unmarked")

			return
		}

		processedCol = len(rows[0])
	}

	stamp := model.ProcessedStampPrefix + timezone.Format(timezone.Now(), constant.DateLayoutUS)

	for i := 1; i < len(rows); i++ {
		if tabular.Cell(rows[i], 0) != timestamp {
			continue
		}

		if err := s.store.SetCell(ctx, sheet, i, processedCol, stamp); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("sheet", sheet).Str("guest", guestName).Msg("failed to write processed marker")

			return
		}

		log.Info().Str("sheet", sheet).Str("guest", guestName).Int("row", i).Msg("submission marked processed")

		return
	}

	log.Warn().Str("sheet", sheet).Str("timestamp", timestamp).Str("guest", guestName).Msg("no submission row matched timestamp, nothing marked")
}

func submissionFromRow(row []string, sourceRow int, mapping map[string]int) model.Submission {
	field := func(name, fallback string) string {
		col, ok := mapping[name]
		if !ok {
			return fallback
		}

		value := strings.TrimSpace(tabular.Cell(row, col))
		if value == "" {
			return fallback
		}

		return value
	}

	return model.Submission{
		Timestamp:       tabular.Cell(row, 0),
		GuestName:       field(model.FieldGuestName, model.DefaultGuestName),
		Email:           field(model.FieldEmail, ""),
		Phone:           field(model.FieldPhone, ""),
		RoomNumber:      field(model.FieldRoomNumber, ""),
		CheckInDate:     field(model.FieldCheckInDate, ""),
		Nights:          field(model.FieldNights, model.DefaultNights),
		Guests:          field(model.FieldGuests, model.DefaultGuests),
		Purpose:         field(model.FieldPurpose, ""),
		SpecialRequests: field(model.FieldSpecialRequests, ""),
		SourceRow:       sourceRow,
	}
}

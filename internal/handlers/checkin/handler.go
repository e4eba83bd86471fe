package checkin

import (
	"net/http"

	"frontdesk/infras/otel"
	intakeService "frontdesk/internal/domains/intake/service"
	"frontdesk/internal/domains/occupancy/model/dto"
	occupancyService "frontdesk/internal/domains/occupancy/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	occupancy occupancyService.Occupancy
	intake    intakeService.Intake
	otel      otel.Otel
}

func New(occupancy occupancyService.Occupancy, intake intakeService.Intake, otel otel.Otel) Handler {
	return Handler{
		occupancy: occupancy,
		intake:    intake,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/checkins", func(routerGroup chi.Router) {
		routerGroup.Get("/pending", handler.GetPendingCheckIns)
		routerGroup.Post("/", handler.CommitCheckIn)
		routerGroup.Post("/reject", handler.RejectCheckIn)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/available", handler.GetAvailableRooms)
	})
}

// GetPendingCheckIns lists form submissions that have not been processed yet.
// @Summary List pending check-ins
// @Description Retrieve all unprocessed check-in submissions from the response sheet, in sheet order.
// @Tags CheckIn
// @Produce json
// @Success 200 {object} response.Data[[]model.Submission] "Pending submissions"
// @Router /v1/checkins/pending [get]
func (handler *Handler) GetPendingCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingCheckIns")
	defer scope.End()

	// Read failures surface as an empty list, never as an error.
	pending := handler.intake.ListPendingCheckIns(ctx)

	scope.AddEvent("Pending check-ins retrieved")

	response.WithJSON(w, http.StatusOK, pending)
}

// GetAvailableRooms lists every room with its status annotation.
// @Summary List rooms for the picker
// @Description Retrieve all rooms regardless of status, annotated with availability.
// @Tags CheckIn
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Room summaries"
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms := handler.occupancy.ListAvailableRooms(ctx)

	scope.AddEvent("Rooms retrieved")

	response.WithJSON(w, http.StatusOK, rooms)
}

// CommitCheckIn writes confirmed occupancy data into the matched room row and
// marks the source submission processed.
// @Summary Commit a check-in
// @Description Overwrite the room row with the confirmed occupancy data and mark the submission processed.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.CheckInCommand true "Check-in command"
// @Success 200 {object} response.Data[dto.CommitCheckInResponse] "Confirmation"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/checkins [post]
func (handler *Handler) CommitCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CommitCheckIn")
	defer scope.End()

	cmd := dto.CheckInCommand{}

	if err := validator.Validate(r.Body, &cmd); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate check-in command")

		response.WithError(w, err)

		return
	}

	res, err := handler.occupancy.CommitCheckIn(ctx, cmd)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", cmd.RoomNumber).Msg("failed to commit check-in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Check-in committed for room " + cmd.RoomNumber)

	response.WithJSON(w, http.StatusOK, res)
}

// RejectCheckIn records an operator dismissing a submission. Nothing is
// mutated: the submission is only removed panel-side and reappears the next
// time the panel opens.
// @Summary Reject a submission
// @Description Acknowledge an operator rejection. No sheet mutation happens; the submission is not marked processed.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body dto.RejectRequest true "Reject request"
// @Success 200 {object} response.Message "Rejection acknowledged"
// @Failure 400 {object} response.Error
// @Router /v1/checkins/reject [post]
func (handler *Handler) RejectCheckIn(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectCheckIn")
	defer scope.End()

	req := dto.RejectRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate reject request")

		response.WithError(w, err)

		return
	}

	log.Info().
		Str("timestamp", req.Timestamp).
		Str("guest", req.GuestName).
		Str("reason", req.Reason).
		Msg("submission rejected by operator, not marked processed")

	scope.AddEvent("Submission rejected")

	response.WithMessage(w, http.StatusOK, "Submission rejected")
}

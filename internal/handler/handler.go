package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/auth"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	"github.com/riquelima/SandyPetShop-v3/internal/handler/dto"
	"github.com/riquelima/SandyPetShop-v3/internal/workflow"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Book(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error)
	Availability(ctx context.Context, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error)
}

type WorkflowSvc interface {
	Start(kind workflow.Kind) (workflow.Snapshot, error)
	Get(id string) (workflow.Snapshot, error)
	SubmitStep(id string, step workflow.StepID, raw []byte) (workflow.ValidationResult, workflow.Snapshot, error)
	Back(id string) (workflow.Snapshot, error)
	Submit(ctx context.Context, id string) (*domain.Reservation, workflow.Snapshot, error)
}

type AdminSvc interface {
	ListReservations(ctx context.Context, p *domain.Principal, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Occupancy(ctx context.Context, p *domain.Principal, service domain.ServiceType, date time.Time) ([]domain.SlotAvailability, error)
	Cancel(ctx context.Context, p *domain.Principal, id string) (*domain.Reservation, error)
	Complete(ctx context.Context, p *domain.Principal, id string) (*domain.Reservation, error)
	RebuildOccupancy(ctx context.Context, p *domain.Principal) (int, error)
	AuditOccupancy(ctx context.Context, p *domain.Principal) (int, error)
}

type SlotLengths interface {
	SlotLength(service domain.ServiceType) time.Duration
}

type Handler struct {
	bookingService  BookingSvc
	workflowService WorkflowSvc
	adminService    AdminSvc
	slots           SlotLengths
}

func NewHandler(bookingService BookingSvc, workflowService WorkflowSvc, adminService AdminSvc, slots SlotLengths) *Handler {
	return &Handler{
		bookingService:  bookingService,
		workflowService: workflowService,
		adminService:    adminService,
		slots:           slots,
	}
}

// Public booking

func (h *Handler) Availability(c *ginext.Context) {
	service, date, ok := h.bindDay(c)
	if !ok {
		return
	}

	slots, err := h.bookingService.Availability(c.Request.Context(), service, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(service, date, slots))
}

func (h *Handler) BookGrooming(c *ginext.Context) {
	var req dto.GroomingBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bookingReq, err := req.ToDomain(h.slots.SlotLength(domain.ServiceGrooming))
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.bookingService.Book(c.Request.Context(), bookingReq)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

// Workflows

func (h *Handler) StartWorkflow(c *ginext.Context) {
	var req dto.StartWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	kind, err := workflow.ParseKind(req.Kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	snap, err := h.workflowService.Start(kind)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snap)
}

func (h *Handler) GetWorkflow(c *ginext.Context) {
	snap, err := h.workflowService.Get(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *Handler) SubmitStep(c *ginext.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read request body"})
		return
	}

	result, snap, err := h.workflowService.SubmitStep(c.Param("id"), workflow.StepID(c.Param("step")), raw)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, dto.StepResponse{Validation: result, Workflow: snap})
}

func (h *Handler) BackWorkflow(c *ginext.Context) {
	snap, err := h.workflowService.Back(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *Handler) SubmitWorkflow(c *ginext.Context) {
	res, snap, err := h.workflowService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if snap.ID == "" {
			h.handleError(c, err)
			return
		}
		status, body := errorBody(err)
		c.Set("error", err.Error())
		c.JSON(status, dto.SubmitResponse{Workflow: snap, Error: &body})
		return
	}

	reservation := dto.ToReservationResponse(res)
	c.JSON(http.StatusCreated, dto.SubmitResponse{Reservation: &reservation, Workflow: snap})
}

// Admin

func (h *Handler) ListReservations(c *ginext.Context) {
	var q dto.ReservationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		h.handleError(c, err)
		return
	}

	list, err := h.adminService.ListReservations(c.Request.Context(), principal(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Occupancy(c *ginext.Context) {
	service, date, ok := h.bindDay(c)
	if !ok {
		return
	}

	slots, err := h.adminService.Occupancy(c.Request.Context(), principal(c), service, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(service, date, slots))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	res, err := h.adminService.Cancel(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CompleteReservation(c *ginext.Context) {
	res, err := h.adminService.Complete(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) RebuildOccupancy(c *ginext.Context) {
	n, err := h.adminService.RebuildOccupancy(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Entries: n})
}

func (h *Handler) AuditOccupancy(c *ginext.Context) {
	n, err := h.adminService.AuditOccupancy(c.Request.Context(), principal(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Entries: n})
}

func (h *Handler) bindDay(c *ginext.Context) (domain.ServiceType, time.Time, bool) {
	var q dto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return "", time.Time{}, false
	}

	service, err := domain.ParseServiceType(q.Service)
	if err != nil {
		h.handleError(c, err)
		return "", time.Time{}, false
	}
	date, err := domain.ParseDate(q.Date)
	if err != nil {
		h.handleError(c, err)
		return "", time.Time{}, false
	}
	return service, date, true
}

func principal(c *ginext.Context) *domain.Principal {
	return auth.PrincipalFromContext(c.Request.Context())
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	status, body := errorBody(err)
	c.JSON(status, body)
}

func errorBody(err error) (int, dto.ErrorResponse) {
	body := dto.ErrorResponse{Error: err.Error(), Reason: domain.ReasonCode(err)}

	var mf *domain.MissingFieldError
	if errors.As(err, &mf) {
		body.Field = mf.Field
	}

	switch {
	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, body

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrNoLaneAvailable),
		errors.Is(err, domain.ErrReservationNotActive),
		errors.Is(err, domain.ErrStepOutOfOrder),
		errors.Is(err, domain.ErrWorkflowSubmitted):
		return http.StatusConflict, body

	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrOutsideOperatingHours),
		errors.Is(err, domain.ErrLunchBreakConflict),
		errors.Is(err, domain.ErrInvalidSlot),
		errors.Is(err, domain.ErrInvalidStay),
		errors.Is(err, domain.ErrAddonNotAllowed),
		errors.Is(err, domain.ErrUnknownStep),
		errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, body

	case errors.Is(err, domain.ErrDenied):
		return http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrDenied.Error(), Reason: body.Reason}

	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Reason: "internal"}
	}
}

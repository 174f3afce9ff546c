// Package http exposes the order lifecycle over a JSON API.
//
// The API has no real login flow; the acting identity is taken from the
// X-Actor-Id, X-Actor-Role and X-Actor-Partner request headers and handed
// to the core, which enforces the actual permissions. The adapter only
// translates between HTTP and commands/queries, every rule lives below it.
package http

import (
	"net/http"
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
	"fieldops/internal/core/domain/services"
	"fieldops/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AssignPartner      commands.AssignPartnerCommandHandler
	AssignTechnician   commands.AssignTechnicianCommandHandler
	ConfirmAppointment commands.ConfirmAppointmentCommandHandler
	StartWork          commands.StartWorkCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler
	MarkUnable         commands.MarkUnableCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	RecordFeedback     commands.RecordFeedbackCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	DashboardStats queries.GetDashboardStatsQueryHandler
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	photos   ports.PhotoStorage
}

// NewServer creates a new HTTP server over the given use case handlers.
func NewServer(handlers Handlers, photos ports.PhotoStorage) *Server {
	return &Server{
		handlers: handlers,
		photos:   photos,
	}
}

// RegisterRoutes attaches the API to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/partner", s.AssignPartner)
	api.POST("/orders/:id/technician", s.AssignTechnician)
	api.POST("/orders/:id/appointment", s.ConfirmAppointment)
	api.POST("/orders/:id/start", s.StartWork)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/unable", s.MarkUnable)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/feedback", s.RecordFeedback)
	api.GET("/dashboard/stats", s.DashboardStats)
}

// actor builds the acting identity from the request headers.
func actor(c echo.Context) (services.Actor, error) {
	id := c.Request().Header.Get("X-Actor-Id")
	roleName := c.Request().Header.Get("X-Actor-Role")
	if id == "" || roleName == "" {
		return services.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing actor identity")
	}

	role, err := services.RoleFromString(roleName)
	if err != nil {
		return services.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown actor role")
	}

	return services.Actor{
		ID:        id,
		Role:      role,
		PartnerID: c.Request().Header.Get("X-Actor-Partner"),
	}, nil
}

func orderID(c echo.Context) (kernel.OrderID, error) {
	return kernel.OrderIDFromString(c.Param("id"))
}

type photosJSON struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Issue  string `json:"issue,omitempty"`
}

type feedbackJSON struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type orderJSON struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customerName"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	ServiceType     string        `json:"serviceType"`
	ServiceItemID   string        `json:"serviceItemId,omitempty"`
	Revenue         int64         `json:"revenue"`
	Cost            int64         `json:"cost"`
	Memo            string        `json:"memo,omitempty"`
	Status          string        `json:"status"`
	ReceivedAt      time.Time     `json:"receivedAt"`
	CompletedAt     *time.Time    `json:"completedAt,omitempty"`
	PartnerID       string        `json:"partnerId,omitempty"`
	TechnicianID    string        `json:"technicianId,omitempty"`
	AppointmentDate string        `json:"appointmentDate,omitempty"`
	Photos          photosJSON    `json:"photos"`
	Feedback        *feedbackJSON `json:"feedback,omitempty"`
	IssueNote       string        `json:"issueNote,omitempty"`
}

func fromAggregate(o *order.Order) orderJSON {
	body := orderJSON{
		ID:              o.ID().String(),
		CustomerName:    o.CustomerName(),
		Phone:           o.Phone(),
		Address:         o.Address(),
		ServiceType:     o.ServiceType(),
		ServiceItemID:   o.ServiceItemID(),
		Revenue:         o.Revenue(),
		Cost:            o.Cost(),
		Memo:            o.Memo(),
		Status:          o.Status().String(),
		ReceivedAt:      o.ReceivedAt(),
		CompletedAt:     o.CompletedAt(),
		PartnerID:       o.PartnerID(),
		TechnicianID:    o.TechnicianID(),
		AppointmentDate: o.AppointmentDate(),
		Photos: photosJSON{
			Before: o.Photos().Before,
			After:  o.Photos().After,
			Issue:  o.Photos().Issue,
		},
		IssueNote: o.IssueNote(),
	}
	if feedback := o.Feedback(); feedback != nil {
		body.Feedback = &feedbackJSON{Rating: feedback.Rating(), Comment: feedback.Comment()}
	}
	return body
}

func fromQueryResponse(r queries.OrderResponse) orderJSON {
	body := orderJSON{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		Address:         r.Address,
		ServiceType:     r.ServiceType,
		ServiceItemID:   r.ServiceItemID,
		Revenue:         r.Revenue,
		Cost:            r.Cost,
		Memo:            r.Memo,
		Status:          r.Status,
		ReceivedAt:      r.ReceivedAt,
		CompletedAt:     r.CompletedAt,
		PartnerID:       r.PartnerID,
		TechnicianID:    r.TechnicianID,
		AppointmentDate: r.AppointmentDate,
		Photos:          photosJSON{Before: r.Photos.Before, After: r.Photos.After, Issue: r.Photos.Issue},
		IssueNote:       r.IssueNote,
	}
	if r.Feedback != nil {
		body.Feedback = &feedbackJSON{Rating: r.Feedback.Rating, Comment: r.Feedback.Comment}
	}
	return body
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type createOrderRequest struct {
	CustomerName  string `json:"customerName" validate:"required"`
	Phone         string `json:"phone"        validate:"required"`
	Address       string `json:"address"      validate:"required"`
	ServiceType   string `json:"serviceType"  validate:"required"`
	ServiceItemID string `json:"serviceItemId"`
	Memo          string `json:"memo"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createOrderRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}
	if err = c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(act,
		req.CustomerName, req.Phone, req.Address, req.ServiceType, req.ServiceItemID, req.Memo)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, fromAggregate(created))
}

type assignPartnerRequest struct {
	PartnerID string `json:"partnerId"`
}

// AssignPartner handles POST /api/v1/orders/:id/partner.
func (s *Server) AssignPartner(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req assignPartnerRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignPartnerCommand(act, id, req.PartnerID)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.AssignPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

type assignTechnicianRequest struct {
	TechnicianID string `json:"technicianId"`
}

// AssignTechnician handles POST /api/v1/orders/:id/technician.
func (s *Server) AssignTechnician(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req assignTechnicianRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewAssignTechnicianCommand(act, id, req.TechnicianID)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.AssignTechnician.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

type confirmAppointmentRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ConfirmAppointment handles POST /api/v1/orders/:id/appointment.
func (s *Server) ConfirmAppointment(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req confirmAppointmentRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewConfirmAppointmentCommand(act, id, req.Date, req.Time)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.ConfirmAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

// StartWork handles POST /api/v1/orders/:id/start.
func (s *Server) StartWork(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewStartWorkCommand(act, id)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.StartWork.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

type completeOrderRequest struct {
	// Photo content is carried base64-encoded and resolved to opaque
	// references before the command runs.
	PhotoBefore []byte `json:"photoBefore"`
	PhotoAfter  []byte `json:"photoAfter"`
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req completeOrderRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	photos, err := s.resolvePhotos(c, req.PhotoBefore, req.PhotoAfter, nil)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(act, id, photos)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

type markUnableRequest struct {
	PhotoBefore []byte `json:"photoBefore"`
	PhotoIssue  []byte `json:"photoIssue"`
	IssueNote   string `json:"issueNote"`
}

// MarkUnable handles POST /api/v1/orders/:id/unable.
func (s *Server) MarkUnable(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req markUnableRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	photos, err := s.resolvePhotos(c, req.PhotoBefore, nil, req.PhotoIssue)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkUnableCommand(act, id, photos, req.IssueNote)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.MarkUnable.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(act, id)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

type recordFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RecordFeedback handles POST /api/v1/orders/:id/feedback.
func (s *Server) RecordFeedback(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req recordFeedbackRequest
	if err = c.Bind(&req); err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewRecordFeedbackCommand(act, id, req.Rating, req.Comment)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := s.handlers.RecordFeedback.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromAggregate(updated))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := orderID(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(act, id)
	if err != nil {
		return writeError(c, err)
	}

	response, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fromQueryResponse(response))
}

// ListOrders handles GET /api/v1/orders with optional status and search
// query parameters.
func (s *Server) ListOrders(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewListOrdersQuery(act, c.QueryParam("status"), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}

	responses, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	body := make([]orderJSON, 0, len(responses))
	for _, r := range responses {
		body = append(body, fromQueryResponse(r))
	}

	return c.JSON(http.StatusOK, body)
}

// DashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) DashboardStats(c echo.Context) error {
	act, err := actor(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetDashboardStatsQuery(act)
	if err != nil {
		return writeError(c, err)
	}

	stats, err := s.handlers.DashboardStats.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// resolvePhotos stores the uploaded photo content and returns the opaque
// references the lifecycle transitions carry. Absent photos stay absent; the
// domain decides which ones a transition requires.
func (s *Server) resolvePhotos(c echo.Context, before, after, issue []byte) (order.Photos, error) {
	var photos order.Photos
	var err error

	ctx := c.Request().Context()
	if len(before) > 0 {
		if photos.Before, err = s.photos.Resolve(ctx, before); err != nil {
			return order.Photos{}, err
		}
	}
	if len(after) > 0 {
		if photos.After, err = s.photos.Resolve(ctx, after); err != nil {
			return order.Photos{}, err
		}
	}
	if len(issue) > 0 {
		if photos.Issue, err = s.photos.Resolve(ctx, issue); err != nil {
			return order.Photos{}, err
		}
	}

	return photos, nil
}

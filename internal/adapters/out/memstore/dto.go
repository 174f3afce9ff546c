package memstore

import (
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// OrderDTO is the stored shape of an order. The store never hands out live
// aggregates: every read rebuilds a fresh aggregate from the DTO, so two
// callers can never share mutable state through the store.
type OrderDTO struct {
	ID           string
	CustomerName string
	Phone        string
	Address      string

	ServiceType   string
	ServiceItemID string
	Revenue       int64
	Cost          int64
	Memo          string

	Status          string
	ReceivedAt      time.Time
	CompletedAt     *time.Time
	PartnerID       string
	TechnicianID    string
	AppointmentDate string
	PhotoBefore     string
	PhotoAfter      string
	PhotoIssue      string
	FeedbackRating  *int
	FeedbackComment string
	IssueNote       string
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
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
		PartnerID:       o.PartnerID(),
		TechnicianID:    o.TechnicianID(),
		AppointmentDate: o.AppointmentDate(),
		PhotoBefore:     o.Photos().Before,
		PhotoAfter:      o.Photos().After,
		PhotoIssue:      o.Photos().Issue,
		IssueNote:       o.IssueNote(),
	}

	if completedAt := o.CompletedAt(); completedAt != nil {
		at := *completedAt
		dto.CompletedAt = &at
	}

	if feedback := o.Feedback(); feedback != nil {
		rating := feedback.Rating()
		dto.FeedbackRating = &rating
		dto.FeedbackComment = feedback.Comment()
	}

	return dto
}

func (d OrderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.OrderIDFromString(d.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	var feedback *order.Feedback
	if d.FeedbackRating != nil {
		f, feedbackErr := order.NewFeedback(*d.FeedbackRating, d.FeedbackComment)
		if feedbackErr != nil {
			return nil, feedbackErr
		}
		feedback = &f
	}

	var completedAt *time.Time
	if d.CompletedAt != nil {
		at := *d.CompletedAt
		completedAt = &at
	}

	return order.RestoreOrder(id,
		order.CustomerInfo{Name: d.CustomerName, Phone: d.Phone, Address: d.Address},
		order.ServiceDetails{
			Type:    d.ServiceType,
			ItemID:  d.ServiceItemID,
			Revenue: d.Revenue,
			Cost:    d.Cost,
		},
		d.Memo,
		order.LifecycleState{
			Status:          status,
			ReceivedAt:      d.ReceivedAt,
			CompletedAt:     completedAt,
			PartnerID:       d.PartnerID,
			TechnicianID:    d.TechnicianID,
			AppointmentDate: d.AppointmentDate,
			Photos: order.Photos{
				Before: d.PhotoBefore,
				After:  d.PhotoAfter,
				Issue:  d.PhotoIssue,
			},
			Feedback:  feedback,
			IssueNote: d.IssueNote,
		})
}

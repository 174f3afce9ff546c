// Package queries contains read-only operations over the order store.
// Implements the query side of the CQRS architecture: queries never mutate
// state and are served from store snapshots, so they do not block writers.
//
// Every query is scoped by the acting identity. Head office sees everything,
// partner administrators the orders transferred to their partner, technicians
// the orders assigned to them.
package queries

import (
	"time"

	"fieldops/internal/core/domain/model/order"
)

// PhotoRefs carries the evidence photo references of an order.
type PhotoRefs struct {
	Before string
	After  string
	Issue  string
}

// FeedbackResponse carries recorded customer feedback.
type FeedbackResponse struct {
	Rating  int
	Comment string
}

// OrderResponse is the read model of a single order.
//
// Example:
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s %s %s\n", response.ID, response.Status, response.CustomerName)
type OrderResponse struct {
	ID              string
	CustomerName    string
	Phone           string
	Address         string
	ServiceType     string
	ServiceItemID   string
	Revenue         int64
	Cost            int64
	Memo            string
	Status          string
	ReceivedAt      time.Time
	CompletedAt     *time.Time
	PartnerID       string
	TechnicianID    string
	AppointmentDate string
	Photos          PhotoRefs
	Feedback        *FeedbackResponse
	IssueNote       string
}

func newOrderResponse(o *order.Order) OrderResponse {
	response := OrderResponse{
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
		Photos: PhotoRefs{
			Before: o.Photos().Before,
			After:  o.Photos().After,
			Issue:  o.Photos().Issue,
		},
		IssueNote: o.IssueNote(),
	}

	if feedback := o.Feedback(); feedback != nil {
		response.Feedback = &FeedbackResponse{
			Rating:  feedback.Rating(),
			Comment: feedback.Comment(),
		}
	}

	return response
}

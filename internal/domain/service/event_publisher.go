package service

import (
	"context"
)

// Address event actions.
const (
	AddressEventCreated = "address.created"
	AddressEventDeleted = "address.deleted"
)

// AddressEvent describes an address lifecycle change, published for
// downstream consumers such as delivery-zone caches.
type AddressEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Action     string `json:"action"`               // AddressEventCreated or AddressEventDeleted
	AddressID  string `json:"address_id"`
	CustomerID string `json:"customer_id"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`
	StateName  string `json:"state_name,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes an address lifecycle event for async processing
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

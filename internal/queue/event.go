// Package queue defines message payloads exchanged over the message broker.
package queue

// InquiryReceivedEvent is published when a visitor submits a travel
// inquiry. It carries enough information for downstream consumers (sales
// notifications, analytics) without querying the primary database.
type InquiryReceivedEvent struct {
	InquiryID      uint64 `json:"inquiry_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Destination    string `json:"destination,omitempty"`
	PreferredDates string `json:"preferred_dates,omitempty"`
	ReceivedAt     string `json:"received_at"`
}

package model

import "time"

// Inquiry is a travel inquiry submitted anonymously through the public
// site. Rows are immutable after creation; the admin dashboard only lists
// them, newest first.
//
// Fields:
//  ID              – primary key identifier.
//  FullName        – name of the person submitting the inquiry.
//  Email           – contact email address.
//  Phone           – optional contact phone number.
//  Destination     – optional destination of interest.
//  PreferredDates  – optional free-form travel dates.
//  SpecialRequests – optional free-form requests.
//  CreatedAt       – timestamp of submission.
type Inquiry struct {
	ID              uint64    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Destination     string    `json:"destination,omitempty"`
	PreferredDates  string    `json:"preferred_dates,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

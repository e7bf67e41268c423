// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package booking records the booking requests a manager sends to artists and
// the conversation attached to each one.
package booking

import (
	"slices"
	"time"
)

// Status is the negotiation state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further change is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// SenderType identifies which side of the booking wrote a message.
type SenderType string

const (
	SenderManager SenderType = "manager"
	SenderArtist  SenderType = "artist"
)

type Message struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"senderId"`
	SenderType  SenderType `json:"senderType"`
	Content     string     `json:"content"`
	Timestamp   time.Time  `json:"timestamp"`
	Attachments []string   `json:"attachments,omitempty"`
}

type Booking struct {
	ID            string    `json:"id"`
	EventID       string    `json:"eventId"`
	ArtistID      string    `json:"artistId"`
	ManagerID     string    `json:"managerId"`
	Status        Status    `json:"status"`
	ProposedPrice int       `json:"proposedPrice"`
	FinalPrice    *int      `json:"finalPrice,omitempty"`
	Messages      []Message `json:"messages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.FinalPrice != nil {
		price := *b.FinalPrice
		c.FinalPrice = &price
	}
	c.Messages = make([]Message, len(b.Messages))
	for i, m := range b.Messages {
		m.Attachments = slices.Clone(m.Attachments)
		c.Messages[i] = m
	}
	return &c
}

// CreateInput is the body of a new booking request.
type CreateInput struct {
	EventID       string `json:"eventId"`
	ArtistID      string `json:"artistId"`
	ProposedPrice int    `json:"proposedPrice"`
	// Message optionally opens the conversation.
	Message string `json:"message"`
}

// Patch changes the negotiation outcome. Nil fields are left untouched.
type Patch struct {
	Status     *Status `json:"status"`
	FinalPrice *int    `json:"finalPrice"`
}

type MessageInput struct {
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
}

const (
	FieldEventID       = "eventId"
	FieldArtistID      = "artistId"
	FieldProposedPrice = "proposedPrice"
	FieldFinalPrice    = "finalPrice"
	FieldStatus        = "status"
	FieldContent       = "content"
)

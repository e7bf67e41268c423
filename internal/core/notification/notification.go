// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package notification keeps the manager's notification feed, newest first.
package notification

import "time"

// Type classifies a notification for the client's icon and routing.
type Type string

const (
	TypeBooking      Type = "booking"
	TypeMessage      Type = "message"
	TypeEvent        Type = "event"
	TypeVerification Type = "verification"
)

// Item is one entry in the feed.
type Item struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"actionUrl,omitempty"`
}

// Feed is the list view returned to clients.
type Feed struct {
	Items       []Item `json:"items"`
	UnreadCount int    `json:"unreadCount"`
}

const (
	FieldType    = "type"
	FieldTitle   = "title"
	FieldMessage = "message"
)

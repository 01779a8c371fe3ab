package models

import (
	"strings"
	"time"
)

// NoteStatus represents the follow-up state of a call note
type NoteStatus string

const (
	StatusFollowUp     NoteStatus = "follow_up"
	StatusWaitingReply NoteStatus = "waiting_reply"
	StatusClosed       NoteStatus = "closed"
	StatusOther        NoteStatus = "other"
)

// CallDirection represents who initiated the call
type CallDirection string

const (
	DirectionInbound  CallDirection = "inbound"
	DirectionOutbound CallDirection = "outbound"
)

// Priority represents a note's priority
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// OrderStatus represents where an order is in its lifecycle
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Contact represents a person in the local contact list
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CardImage string    `json:"card_image,omitempty"` // opaque path/URI to a business-card photo
	CreatedAt time.Time `json:"created_at"`
}

// CallNote represents a note attached to a call (or a note-only entry).
// ContactName is denormalized at creation time and never re-synced if the
// contact is later renamed.
type CallNote struct {
	ID            string        `json:"id"`
	ContactID     string        `json:"contact_id"`
	ContactName   string        `json:"contact_name"`
	Text          string        `json:"text"`
	CallStartTime time.Time     `json:"call_start_time"`
	CallEndTime   time.Time     `json:"call_end_time"`
	DurationSecs  int           `json:"duration_secs"`
	Direction     CallDirection `json:"direction"`
	Status        NoteStatus    `json:"status"`
	StatusCustom  string        `json:"status_custom,omitempty"` // free text when Status == other
	Priority      Priority      `json:"priority,omitempty"`
	Category      string        `json:"category,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	FolderID      string        `json:"folder_id,omitempty"`
	AutoGenerated bool          `json:"auto_generated,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at,omitzero"`
}

// Reminder represents a follow-up reminder, optionally linked to a note
type Reminder struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id,omitempty"`
	ContactName string     `json:"contact_name,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Archived    bool       `json:"archived,omitempty"`
	NoteID      string     `json:"note_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// OrderItem is a single line on an order
type OrderItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Order represents a simple e-commerce order for a contact
type Order struct {
	ID           string      `json:"id"`
	ContactID    string      `json:"contact_id"`
	ContactName  string      `json:"contact_name"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	Notes        string      `json:"notes,omitempty"`
	ReminderDate *time.Time  `json:"reminder_date,omitempty"`
	ReminderSent bool        `json:"reminder_sent,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at,omitzero"`
}

// NoteFolder groups notes; deleting a folder unfiles its notes rather than
// deleting them.
type NoteFolder struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product is one entry in a product catalog
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Category    string  `json:"category,omitempty"`
	InStock     bool    `json:"in_stock"`
}

// ProductCatalog is a named list of products
type ProductCatalog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Products  []Product `json:"products"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// NoteDisplay holds the note-list display toggles
type NoteDisplay struct {
	ShowDuration  bool `json:"show_duration"`
	ShowDirection bool `json:"show_direction"`
	ShowTags      bool `json:"show_tags"`
}

// DefaultNoteDisplay returns the display toggles used before the user changes them
func DefaultNoteDisplay() NoteDisplay {
	return NoteDisplay{ShowDuration: true, ShowDirection: true, ShowTags: true}
}

// DefaultNoteTemplate is the text pre-filled into the note prompt after a call
const DefaultNoteTemplate = "Spoke with {contact} for {duration}.\n\nDiscussed:\n- \n\nNext step:\n- "

// DefaultPresetTags returns the seeded quick-pick tag list
func DefaultPresetTags() []string {
	return []string{"urgent", "quote", "payment", "delivery", "complaint"}
}

// IsValidStatus checks if a note status is valid
func IsValidStatus(s NoteStatus) bool {
	switch s {
	case StatusFollowUp, StatusWaitingReply, StatusClosed, StatusOther:
		return true
	}
	return false
}

// IsValidDirection checks if a call direction is valid
func IsValidDirection(d CallDirection) bool {
	return d == DirectionInbound || d == DirectionOutbound
}

// IsValidPriority checks if a priority is valid; empty is allowed (unset)
func IsValidPriority(p Priority) bool {
	switch p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// IsValidOrderStatus checks if an order status is valid
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// ValidStatuses returns all note statuses as strings, for help text and suggestions
func ValidStatuses() []string {
	return []string{
		string(StatusFollowUp),
		string(StatusWaitingReply),
		string(StatusClosed),
		string(StatusOther),
	}
}

// ValidOrderStatuses returns all order statuses as strings
func ValidOrderStatuses() []string {
	return []string{
		string(OrderPending),
		string(OrderConfirmed),
		string(OrderShipped),
		string(OrderDelivered),
		string(OrderCancelled),
	}
}

// ValidPriorities returns all priorities as strings
func ValidPriorities() []string {
	return []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
}

// NormalizeStatus converts alternate status spellings to canonical form
// Accepts: "followup"/"follow-up" and "waiting"/"waiting-reply"
func NormalizeStatus(s string) NoteStatus {
	switch strings.ToLower(s) {
	case "followup", "follow-up":
		return StatusFollowUp
	case "waiting", "waiting-reply", "waitingreply":
		return StatusWaitingReply
	default:
		return NoteStatus(strings.ToLower(s))
	}
}

// NormalizeDirection converts alternate direction spellings to canonical form
// Accepts: "in"/"incoming" and "out"/"outgoing"
func NormalizeDirection(d string) CallDirection {
	switch strings.ToLower(d) {
	case "in", "incoming":
		return DirectionInbound
	case "out", "outgoing":
		return DirectionOutbound
	default:
		return CallDirection(strings.ToLower(d))
	}
}

// StatusLabel returns the display label for a note's status. For "other" the
// custom text is the label.
func (n *CallNote) StatusLabel() string {
	if n.Status == StatusOther && n.StatusCustom != "" {
		return n.StatusCustom
	}
	switch n.Status {
	case StatusFollowUp:
		return "Follow up"
	case StatusWaitingReply:
		return "Waiting reply"
	case StatusClosed:
		return "Closed"
	case StatusOther:
		return "Other"
	}
	return string(n.Status)
}

// ComputeTotal returns the sum of price*quantity over the order's items
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

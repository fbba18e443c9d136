package model

type Ticket struct {
	DTO
	EventID              string `gorm:"size:36;index;not null" json:"eventId"`
	BuyerName            string `json:"buyerName"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Quantity             int    `gorm:"default:1" json:"quantity"`
	Price                int64  `json:"price"`
	Channel              string `gorm:"size:20;default:'online'" json:"channel"`
	Status               string `gorm:"size:20;default:'pending'" json:"status"`
	StatusDescription    string `json:"statusDescription,omitempty"`
	PesapalTransactionID string `gorm:"index" json:"pesapalTransactionId,omitempty"`
	Used                 bool   `gorm:"default:false" json:"used"`
	IsActive             bool   `gorm:"default:false" json:"isActive"`
	BatchCode            string `gorm:"size:40;index" json:"batchCode,omitempty"`
	ConfirmationCode     string `gorm:"size:12;uniqueIndex" json:"confirmationCode"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
}

type CreateTicketInput struct {
	EventID   string `json:"eventId" validate:"required"`
	BuyerName string `json:"buyerName" validate:"omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Price     int64  `json:"price" validate:"gte=0"`
	Channel   string `json:"channel" validate:"required,oneof=online physical_batch"`
	BatchCode string `json:"batchCode" validate:"required_if=Channel physical_batch"`
	IsActive  bool   `json:"isActive"`
}

type EditTicketInput struct {
	BuyerName *string `json:"buyerName"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status" validate:"omitempty,oneof=pending confirmed failed"`
	Used      *bool   `json:"used"`
	IsActive  *bool   `json:"isActive"`
}

type FilterTicketInput struct {
	Pagination
	EventID string `query:"eventId" validate:"omitempty"`
	Status  string `query:"status" validate:"omitempty,oneof=pending confirmed failed"`
	Channel string `query:"channel" validate:"omitempty,oneof=online physical_batch"`
}

type InitiatePaymentInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	EventID  string `json:"eventId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// TicketSnapshot is the redacted view returned by the verification workflow.
type TicketSnapshot struct {
	ID               string        `json:"id"`
	Event            *EventSummary `json:"event,omitempty"`
	BuyerName        string        `json:"buyerName"`
	Phone            string        `json:"phone"`
	Channel          string        `json:"channel"`
	Used             bool          `json:"used"`
	ConfirmationCode string        `json:"confirmationCode"`
}

type VerificationResult struct {
	Valid  bool            `json:"valid"`
	Reason string          `json:"reason,omitempty"`
	Ticket *TicketSnapshot `json:"ticket,omitempty"`
	Card   *CardSnapshot   `json:"card,omitempty"`
}

// Checkin is published on the redis channel after a successful redemption.
type Checkin struct {
	Kind       string `json:"kind"` // "ticket" or "card"
	ID         string `json:"id"`
	EventTitle string `json:"eventTitle"`
	BuyerName  string `json:"buyerName,omitempty"`
	At         int64  `json:"at"`
}

package model

// InvitationCard lives in the cards database. It references its event by id
// only; the event row itself is in the main database.
type InvitationCard struct {
	DTO
	EventID   string `gorm:"size:36;index;not null" json:"eventId"`
	BatchCode string `gorm:"size:40;index;not null" json:"batchCode"`
	CardType  string `gorm:"size:40" json:"cardType"`
	IsUsed    bool   `gorm:"default:false" json:"isUsed"`
}

type Batch struct {
	Code      string `gorm:"primaryKey;size:40" json:"code"`
	IsActive  bool   `gorm:"default:true" json:"isActive"`
	CreatedAt int64  `gorm:"autoCreateTime" json:"createdAt"`
}

type CreateCardInput struct {
	EventID   string `json:"eventId" validate:"required"`
	BatchCode string `json:"batchCode" validate:"required"`
	CardType  string `json:"cardType" validate:"omitempty"`
	Count     int    `json:"count" validate:"omitempty,gte=1,lte=500"`
}

type SetCardUsedInput struct {
	IsUsed bool `json:"isUsed"`
}

type CreateBatchInput struct {
	Code     string `json:"code" validate:"required,max=40"`
	IsActive *bool  `json:"isActive"`
}

type CardSnapshot struct {
	ID        string        `json:"id"`
	Event     *EventSummary `json:"event,omitempty"`
	BatchCode string        `json:"batchCode"`
	CardType  string        `json:"cardType"`
	Used      bool          `json:"used"`
}

package store

import (
	"context"
	"errors"
	"time"

	"foundation_backend/constants"
	"foundation_backend/model"

	"gorm.io/gorm"
)

type GormTickets struct {
	DB *gorm.DB
}

func (s *GormTickets) Create(ctx context.Context, t *model.Ticket) error {
	return s.DB.WithContext(ctx).Create(t).Error
}

func (s *GormTickets) FindByID(ctx context.Context, id string) (*model.Ticket, error) {
	var t model.Ticket
	if err := s.DB.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormTickets) FindByTrackingID(ctx context.Context, trackingID string) (*model.Ticket, error) {
	var t model.Ticket
	err := s.DB.WithContext(ctx).
		First(&t, "pesapal_transaction_id = ? OR id = ?", trackingID, trackingID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (s *GormTickets) Update(ctx context.Context, id string, fields map[string]any) error {
	res := s.DB.WithContext(ctx).Model(&model.Ticket{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormTickets) Delete(ctx context.Context, ids []string) (int64, error) {
	res := s.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Ticket{})
	return res.RowsAffected, res.Error
}

func (s *GormTickets) FindStalePending(ctx context.Context, olderThan time.Time) ([]model.Ticket, error) {
	var tickets []model.Ticket
	err := s.DB.WithContext(ctx).
		Where("status = ? AND pesapal_transaction_id <> '' AND created_at < ?",
			constants.TicketPending, olderThan).
		Find(&tickets).Error
	return tickets, err
}

type GormCards struct {
	DB *gorm.DB
}

func (s *GormCards) FindByID(ctx context.Context, id string) (*model.InvitationCard, error) {
	var card model.InvitationCard
	if err := s.DB.WithContext(ctx).First(&card, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

func (s *GormCards) Update(ctx context.Context, id string, fields map[string]any) error {
	res := s.DB.WithContext(ctx).Model(&model.InvitationCard{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormBatches struct {
	DB *gorm.DB
}

func (s *GormBatches) FindByCode(ctx context.Context, code string) (*model.Batch, error) {
	var batch model.Batch
	if err := s.DB.WithContext(ctx).First(&batch, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &batch, nil
}

type GormEvents struct {
	DB *gorm.DB
}

func (s *GormEvents) FindByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := s.DB.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type ConsultationRepository interface {
	List(ctx context.Context) ([]entity.Consultation, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error)
	Create(ctx context.Context, consultation *entity.Consultation) error
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) List(ctx context.Context) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := r.db.WithContext(ctx).
		Order("consultation_date DESC").
		Find(&consultations).Error
	return consultations, err
}

func (r *consultationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Consultation, error) {
	var consultation entity.Consultation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&consultation).Error; err != nil {
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	return r.db.WithContext(ctx).Save(consultation).Error
}

func (r *consultationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Consultation{}).Error
}

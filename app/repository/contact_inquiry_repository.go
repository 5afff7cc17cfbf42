package repository

import (
	"github.com/ainative-studio/studio-web/app/models"
	"gorm.io/gorm"
)

// contactInquiryRepository implements the ContactInquiryRepository interface
type contactInquiryRepository struct {
	db *gorm.DB
}

// NewContactInquiryRepository creates a new contact inquiry repository instance
func NewContactInquiryRepository(db *gorm.DB) ContactInquiryRepository {
	return &contactInquiryRepository{db: db}
}

// Create stores a new contact inquiry in the database
func (r *contactInquiryRepository) Create(inquiry *models.ContactInquiry) error {
	return r.db.Create(inquiry).Error
}

// GetByReference retrieves an inquiry by its public reference code
func (r *contactInquiryRepository) GetByReference(reference string) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := r.db.Where("reference = ?", reference).First(&inquiry).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// List retrieves inquiries with pagination, newest first
func (r *contactInquiryRepository) List(offset, limit int) ([]models.ContactInquiry, error) {
	var inquiries []models.ContactInquiry
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&inquiries).Error
	return inquiries, err
}

// Count returns the total number of inquiries
func (r *contactInquiryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactInquiry{}).Count(&count).Error
	return count, err
}

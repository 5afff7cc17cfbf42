package repository

import (
	"github.com/ainative-studio/studio-web/app/models"
)

// ContactInquiryRepository defines the interface for contact inquiry
// database operations
type ContactInquiryRepository interface {
	Create(inquiry *models.ContactInquiry) error
	GetByReference(reference string) (*models.ContactInquiry, error)
	List(offset, limit int) ([]models.ContactInquiry, error)
	Count() (int64, error)
}

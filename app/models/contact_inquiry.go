package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Inquiry types offered by the contact form select.
const (
	InquiryGeneral    = "general"
	InquirySales      = "sales"
	InquirySupport    = "support"
	InquiryEnterprise = "enterprise"
	InquiryPress      = "press"
)

// ContactInquiry is one submitted contact form message.
type ContactInquiry struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Reference   string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name" validate:"required,min=2,max=255"`
	Email       string         `gorm:"type:varchar(255);not null" json:"email" validate:"required,email,max=255"`
	InquiryType string         `gorm:"type:varchar(50);not null" json:"inquiry_type" validate:"required,oneof=general sales support enterprise press"`
	Subject     string         `gorm:"type:varchar(255);not null" json:"subject" validate:"required,min=5,max=255"`
	Message     string         `gorm:"type:text;not null" json:"message" validate:"required,min=10"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ci *ContactInquiry) Validate() error {
	v := validator.New()
	return v.Struct(ci)
}

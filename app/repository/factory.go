package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository instances
type Repositories struct {
	ContactInquiry ContactInquiryRepository
}

// NewRepositories creates all repositories from a DB handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		ContactInquiry: NewContactInquiryRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetContactInquiryRepository returns the contact inquiry repository instance
func (f *Factory) GetContactInquiryRepository() ContactInquiryRepository {
	return f.GetRepositories().ContactInquiry
}

var (
	globalFactory     *Factory
	globalFactoryOnce sync.Once
)

// SetGlobalFactory installs the process-wide repository factory
func SetGlobalFactory(db *gorm.DB) {
	globalFactoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the process-wide repository factory
func GetGlobalFactory() *Factory {
	return globalFactory
}

package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ainative-studio/studio-web/app/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestContactInquiryRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactInquiryRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `contact_inquiries`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	inquiry := &models.ContactInquiry{
		Reference:   "11111111-2222-3333-4444-555555555555",
		Name:        "Ada",
		Email:       "ada@example.com",
		InquiryType: models.InquirySales,
		Subject:     "Enterprise rollout",
		Message:     "We would like a quote for 300 seats.",
	}

	require.NoError(t, repo.Create(inquiry))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactInquiryRepositoryGetByReference(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactInquiryRepository(db)

	rows := sqlmock.NewRows([]string{"id", "reference", "name", "email", "inquiry_type", "subject", "message"}).
		AddRow(1, "ref-1", "Ada", "ada@example.com", "sales", "Enterprise rollout", "300 seats")

	mock.ExpectQuery("SELECT \\* FROM `contact_inquiries`").
		WillReturnRows(rows)

	inquiry, err := repo.GetByReference("ref-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", inquiry.Name)
	assert.Equal(t, "ref-1", inquiry.Reference)
}

func TestContactInquiryRepositoryGetByReferenceNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactInquiryRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `contact_inquiries`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByReference("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactInquiryRepositoryCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactInquiryRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `contact_inquiries`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

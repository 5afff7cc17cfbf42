package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInquiry() ContactInquiry {
	return ContactInquiry{
		Reference:   "11111111-2222-3333-4444-555555555555",
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		InquiryType: InquirySales,
		Subject:     "Enterprise rollout",
		Message:     "We would like a quote for 300 seats.",
	}
}

func TestContactInquiryValidateOK(t *testing.T) {
	inquiry := validInquiry()
	require.NoError(t, inquiry.Validate())
}

func TestContactInquiryValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactInquiry)
	}{
		{"short name", func(ci *ContactInquiry) { ci.Name = "A" }},
		{"bad email", func(ci *ContactInquiry) { ci.Email = "not-an-email" }},
		{"unknown inquiry type", func(ci *ContactInquiry) { ci.InquiryType = "spam" }},
		{"short subject", func(ci *ContactInquiry) { ci.Subject = "Hi" }},
		{"short message", func(ci *ContactInquiry) { ci.Message = "Help" }},
		{"empty message", func(ci *ContactInquiry) { ci.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inquiry := validInquiry()
			tt.mutate(&inquiry)
			assert.Error(t, inquiry.Validate())
		})
	}
}

func TestContactInquiryAcceptsAllInquiryTypes(t *testing.T) {
	for _, typ := range []string{InquiryGeneral, InquirySales, InquirySupport, InquiryEnterprise, InquiryPress} {
		inquiry := validInquiry()
		inquiry.InquiryType = typ
		assert.NoError(t, inquiry.Validate(), "inquiry type %q", typ)
	}
}

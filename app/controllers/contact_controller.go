package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sujit-baniya/flash"

	"github.com/ainative-studio/studio-web/app/models"
	"github.com/ainative-studio/studio-web/app/repository"
	"github.com/ainative-studio/studio-web/internal/pkg/config"
	"github.com/ainative-studio/studio-web/internal/pkg/constants"
	"github.com/ainative-studio/studio-web/internal/pkg/hcaptcha"
	"github.com/ainative-studio/studio-web/internal/pkg/mail"
	"github.com/ainative-studio/studio-web/internal/pkg/statistics"
)

type contactForm struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	InquiryType string `form:"inquiry_type"`
	Subject     string `form:"subject"`
	Message     string `form:"message"`
}

// HandleContact renders the contact form.
func HandleContact(c *fiber.Ctx) error {
	if err := statistics.AddPageView(constants.ContactRoute); err != nil {
		log.Printf("Warning: could not count contact page view: %v", err)
	}

	cfg := config.Load()

	return c.Render("contact", fiber.Map{
		"Title":           "Contact",
		"Company":         cfg.Company,
		"Msg":             flash.Get(c),
		"HCaptchaEnabled": hcaptcha.Enabled(),
		"HCaptchaSiteKey": hcaptcha.SiteKey(),
		"CSRFToken":       c.Locals("csrf"),
	}, "layouts/main")
}

// HandleContactSubmit validates and stores a contact inquiry, then
// notifies the team by email. The visitor gets a reference number they
// can quote in follow-ups.
func HandleContactSubmit(c *fiber.Ctx) error {
	var form contactForm
	if err := c.BodyParser(&form); err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "Invalid form submission."}).Redirect(constants.ContactRoute)
	}

	if hcaptcha.Enabled() {
		token := c.FormValue("h-captcha-response")
		if ok, err := hcaptcha.Verify(token); !ok {
			log.Printf("hCaptcha verification failed: %v", err)
			return flash.WithError(c, fiber.Map{"type": "error", "message": "Captcha verification failed. Please try again."}).Redirect(constants.ContactRoute)
		}
	}

	inquiry := models.ContactInquiry{
		Reference:   uuid.New().String(),
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.TrimSpace(form.Email),
		InquiryType: form.InquiryType,
		Subject:     strings.TrimSpace(form.Subject),
		Message:     strings.TrimSpace(form.Message),
	}

	if err := inquiry.Validate(); err != nil {
		return flash.WithError(c, fiber.Map{"type": "error", "message": validationMessage(err)}).Redirect(constants.ContactRoute)
	}

	repo := repository.GetGlobalFactory().GetContactInquiryRepository()
	if err := repo.Create(&inquiry); err != nil {
		log.Printf("Error saving contact inquiry: %v", err)
		return flash.WithError(c, fiber.Map{"type": "error", "message": "We could not save your message. Please try again later."}).Redirect(constants.ContactRoute)
	}

	cfg := config.Load()
	go notifyTeam(cfg, &inquiry)

	success := fmt.Sprintf("Thank you! Your message has been sent. Reference: %s", inquiry.Reference)
	return flash.WithSuccess(c, fiber.Map{"type": "success", "message": success}).Redirect(constants.ContactRoute)
}

func notifyTeam(cfg config.Site, inquiry *models.ContactInquiry) {
	subject := fmt.Sprintf("[%s] %s", inquiry.InquiryType, inquiry.Subject)
	body := fmt.Sprintf("Reference: %s\nFrom: %s <%s>\n\n%s", inquiry.Reference, inquiry.Name, inquiry.Email, inquiry.Message)
	if err := mail.SendMail(cfg.Company.Email, subject, body); err != nil {
		log.Printf("Error sending contact notification mail: %v", err)
	}
}

// validationMessage turns the first validator error into a message the
// visitor can act on.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Name":
			return "Please enter your name (at least 2 characters)."
		case "Email":
			return "Please enter a valid email address."
		case "InquiryType":
			return "Please pick an inquiry type."
		case "Subject":
			return "Please enter a subject (at least 5 characters)."
		case "Message":
			return "Please enter a message (at least 10 characters)."
		}
	}
	return "Please check your input and try again."
}

package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"github.com/labstack/echo/v4"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/pkg/mailer"
	"marketing-platform/utils"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// NotifyConfig tells the handler where submission notifications go and how
// long a send may take.
type NotifyConfig struct {
	To      []string
	Timeout time.Duration
}

// Handler serves public submissions and the admin contact panel.
type Handler struct {
	repo   Repository
	mail   mailer.Mailer
	notify NotifyConfig
	log    logger.Logger
}

func NewHandler(repo Repository, mail mailer.Mailer, notify NotifyConfig, log logger.Logger) *Handler {
	return &Handler{
		repo:   repo,
		mail:   mail,
		notify: notify,
		log:    log.WithComponent("contact"),
	}
}

// Submit stores a contact-form submission and sends a best-effort email
// notification. A failed send never fails the request.
func (h *Handler) Submit(c echo.Context) error {
	req := new(SubmitRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	record := &Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
		Status:  "new",
	}

	if err := h.repo.Create(c.Request().Context(), record); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to submit contact form.", err)
	}

	h.log.Info("Contact form submitted", logger.ContactID(record.ID), logger.Email(record.Email))
	h.sendNotification(record, "New contact form submission")

	return apperrors.RespondWithSuccess(c, SubmitResponse{
		Success:   true,
		Message:   "Thank you for contacting us! We will get back to you soon.",
		ContactID: record.ID,
	})
}

// BookMeeting stores a meeting request. The frontend packs the preferred
// date, time and notes into one pipe-delimited message field.
func (h *Handler) BookMeeting(c echo.Context) error {
	req := new(SubmitRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if appErr := req.Validate(); appErr != nil {
		return appErr
	}

	date, meetingTime, notes := ParseMeetingMessage(req.Message)

	record := &Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: notes,
		Status:  "new",
	}
	if date != "" {
		record.MeetingDate = &date
	}
	if meetingTime != "" {
		record.MeetingTime = &meetingTime
	}

	if err := h.repo.Create(c.Request().Context(), record); err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to submit meeting request.", err)
	}

	h.log.Info("Meeting request submitted", logger.ContactID(record.ID), logger.Email(record.Email))
	h.sendNotification(record, "New meeting request")

	return apperrors.RespondWithSuccess(c, SubmitResponse{
		Success:   true,
		Message:   "Meeting request received! Our team will contact you soon.",
		ContactID: record.ID,
	})
}

// List returns contact submissions for the admin panel, newest first.
func (h *Handler) List(c echo.Context) error {
	filter := ListFilter{
		Status: c.QueryParam("status_filter"),
		Page:   1,
		Limit:  defaultLimit,
	}

	if page, limit, appErr := utils.ParsePagination(c, defaultLimit, maxLimit); appErr != nil {
		return appErr
	} else {
		filter.Page, filter.Limit = page, limit
	}

	items, total, err := h.repo.List(c.Request().Context(), filter)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to fetch contacts.", err)
	}

	return apperrors.RespondWithSuccess(c, ListResponse{
		Success: true,
		Data:    items,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Pages:   utils.PageCount(total, filter.Limit),
	})
}

// UpdateStatus stores the new status tag verbatim. There is no transition
// model; admins use it as free-form labeling.
func (h *Handler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	req := new(UpdateStatusRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid request payload.")
	}
	if req.Status == "" {
		return apperrors.NewUnprocessable(apperrors.ErrCodeValidationFailed, "Status is required.")
	}

	if err := h.repo.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeContactNotFound, "Contact not found")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to update contact status.", err)
	}

	h.log.Info("Contact status updated", logger.ContactID(id), logger.String("status", req.Status))

	return apperrors.RespondWithSuccess(c, MutationResponse{
		Success: true,
		Message: "Contact status updated",
	})
}

func (h *Handler) sendNotification(record *Contact, subject string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.notify.Timeout)
	defer cancel()

	msg := mailer.Message{
		Subject: fmt.Sprintf("%s from %s", subject, record.Name),
		HTML:    notificationHTML(record),
		ReplyTo: record.Email,
		To:      h.notify.To,
	}

	if err := h.mail.Send(ctx, msg); err != nil {
		h.log.Error("Failed to send notification email", err, logger.ContactID(record.ID))
		return
	}

	if err := h.repo.MarkEmailSent(ctx, record.ID); err != nil {
		h.log.Error("Failed to mark email as sent", err, logger.ContactID(record.ID))
	}
}

func notificationHTML(record *Contact) string {
	body := fmt.Sprintf(
		"<h2>%s</h2><p><strong>Email:</strong> %s</p>",
		html.EscapeString(record.Name), html.EscapeString(record.Email),
	)
	if record.Phone != nil {
		body += fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", html.EscapeString(*record.Phone))
	}
	if record.Service != nil {
		body += fmt.Sprintf("<p><strong>Service:</strong> %s</p>", html.EscapeString(*record.Service))
	}
	if record.MeetingDate != nil {
		body += fmt.Sprintf("<p><strong>Preferred date:</strong> %s</p>", html.EscapeString(*record.MeetingDate))
	}
	if record.MeetingTime != nil {
		body += fmt.Sprintf("<p><strong>Preferred time:</strong> %s</p>", html.EscapeString(*record.MeetingTime))
	}
	body += fmt.Sprintf("<p>%s</p>", html.EscapeString(record.Message))
	return body
}

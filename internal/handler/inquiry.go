package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/queue"
	queue_publisher "github.com/averose/luxe-travel-cms/internal/service"
	"github.com/averose/luxe-travel-cms/internal/validate"
)

// InquiryStore is the slice of the inquiry repository the handler needs.
type InquiryStore interface {
	Create(ctx context.Context, in *model.Inquiry) (*model.Inquiry, error)
	List(ctx context.Context) ([]*model.Inquiry, error)
}

// InquiryHandler serves the public inquiry form and the admin listing.
type InquiryHandler struct {
	Inquiries InquiryStore

	// Publish is swapped out in tests; nil disables event publishing.
	Publish func(ctx context.Context, ev queue.InquiryReceivedEvent) error
}

func NewInquiryHandler(inquiries InquiryStore) *InquiryHandler {
	return &InquiryHandler{Inquiries: inquiries, Publish: queue_publisher.PublishInquiryReceived}
}

type inquiryReq struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Destination     string `json:"destination"`
	PreferredDates  string `json:"preferred_dates"`
	SpecialRequests string `json:"special_requests"`
}

// Create handles the anonymous POST /api/inquiries submission. Validation
// failures return 400 with the field map and nothing is persisted. A
// broker outage never fails the submission; the event is best-effort.
func (h *InquiryHandler) Create(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if errs := validate.Inquiry(req.FullName, req.Email, req.Phone); !errs.OK() {
		return validationFailed(c, errs)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	in, err := h.Inquiries.Create(ctx, &model.Inquiry{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           strings.TrimSpace(req.Phone),
		Destination:     strings.TrimSpace(req.Destination),
		PreferredDates:  strings.TrimSpace(req.PreferredDates),
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
	})
	if err != nil {
		return repoError(c, err)
	}

	if h.Publish != nil {
		// Detached context: the notification must not be cancelled when the
		// HTTP request finishes.
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pcancel()
			_ = h.Publish(pctx, queue.InquiryReceivedEvent{
				InquiryID:      in.ID,
				FullName:       in.FullName,
				Email:          in.Email,
				Destination:    in.Destination,
				PreferredDates: in.PreferredDates,
				ReceivedAt:     in.CreatedAt.UTC().Format(time.RFC3339),
			})
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{"inquiry": in})
}

// List handles the admin GET /api/inquiries listing, newest first.
func (h *InquiryHandler) List(c echo.Context) error {
	items, err := h.Inquiries.List(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if items == nil {
		items = []*model.Inquiry{}
	}
	return c.JSON(http.StatusOK, echo.Map{"inquiries": items})
}

package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averose/luxe-travel-cms/internal/model"
	"github.com/averose/luxe-travel-cms/internal/queue"
)

// memInquiries is an in-memory InquiryStore.
type memInquiries struct {
	mu    sync.Mutex
	items []*model.Inquiry
}

func (m *memInquiries) Create(_ context.Context, in *model.Inquiry) (*model.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *in
	cp.ID = uint64(len(m.items) + 1)
	cp.CreatedAt = time.Now()
	m.items = append([]*model.Inquiry{&cp}, m.items...)
	return &cp, nil
}

func (m *memInquiries) List(_ context.Context) ([]*model.Inquiry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Inquiry(nil), m.items...), nil
}

func TestInquiryCreate(t *testing.T) {
	t.Run("valid submission persists and publishes", func(t *testing.T) {
		store := &memInquiries{}
		h := &InquiryHandler{Inquiries: store}

		published := make(chan queue.InquiryReceivedEvent, 1)
		h.Publish = func(_ context.Context, ev queue.InquiryReceivedEvent) error {
			published <- ev
			return nil
		}

		c, rec := jsonRequest(http.MethodPost, "/api/inquiries",
			`{"full_name":"  Jane Doe ","email":"JANE@Example.com","destination":"Maldives"}`)
		require.NoError(t, h.Create(c))
		require.Equal(t, http.StatusCreated, rec.Code)

		require.Len(t, store.items, 1)
		assert.Equal(t, "Jane Doe", store.items[0].FullName)   // trimmed
		assert.Equal(t, "jane@example.com", store.items[0].Email) // normalized

		select {
		case ev := <-published:
			assert.Equal(t, store.items[0].ID, ev.InquiryID)
			assert.Equal(t, "Maldives", ev.Destination)
		case <-time.After(2 * time.Second):
			t.Fatal("expected an inquiry.received event")
		}
	})

	t.Run("validation failure persists nothing", func(t *testing.T) {
		store := &memInquiries{}
		h := &InquiryHandler{Inquiries: store}

		c, rec := jsonRequest(http.MethodPost, "/api/inquiries",
			`{"full_name":"Jane Doe","email":"not-an-email"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "email")
		assert.Empty(t, store.items)
	})

	t.Run("nil publisher is fine", func(t *testing.T) {
		h := &InquiryHandler{Inquiries: &memInquiries{}}
		c, rec := jsonRequest(http.MethodPost, "/api/inquiries",
			`{"full_name":"Jane Doe","email":"jane@example.com"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestInquiryList(t *testing.T) {
	store := &memInquiries{}
	h := &InquiryHandler{Inquiries: store}

	for _, name := range []string{"First Caller", "Second Caller"} {
		_, err := store.Create(context.Background(), &model.Inquiry{FullName: name, Email: "x@example.com"})
		require.NoError(t, err)
	}

	c, rec := jsonRequest(http.MethodGet, "/api/inquiries", "")
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	// Newest first.
	assert.Less(t, strings.Index(body, "Second Caller"), strings.Index(body, "First Caller"))
}

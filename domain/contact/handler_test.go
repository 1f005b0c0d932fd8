package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/pkg/mailer"
)

type fakeRepo struct {
	items map[string]*Contact
	clock time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items: map[string]*Contact{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Create(_ context.Context, c *Contact) error {
	f.clock = f.clock.Add(time.Second)
	c.ID = uuid.New().String()
	c.SubmittedAt = f.clock
	stored := *c
	f.items[c.ID] = &stored
	return nil
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]Contact, int, error) {
	matched := []Contact{}
	for _, c := range f.items {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		matched = append(matched, *c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].SubmittedAt.After(matched[j].SubmittedAt) })

	total := len(matched)
	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) error {
	c, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	c.Status = status
	return nil
}

func (f *fakeRepo) MarkEmailSent(_ context.Context, id string) error {
	if c, ok := f.items[id]; ok {
		c.EmailSent = true
	}
	return nil
}

type fakeMailer struct {
	sent []mailer.Message
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if m.fail {
		return errors.New("provider down")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func setup(t *testing.T, mail *fakeMailer) (*echo.Echo, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	notify := NotifyConfig{To: []string{"sales@example.com"}, Timeout: time.Second}
	h := NewHandler(repo, mail, notify, logger.Get())

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Get())
	e.POST("/api/contact", h.Submit)
	e.POST("/api/book-meeting", h.BookMeeting)
	e.GET("/api/admin/contacts", h.List)
	e.PATCH("/api/admin/contacts/:id/status", h.UpdateStatus)
	return e, repo
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validSubmission = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+1 555 0100",
	"service": "Consulting",
	"message": "We would like to discuss a project."
}`

func TestSubmitStoresAndNotifies(t *testing.T) {
	mail := &fakeMailer{}
	e, repo := setup(t, mail)

	rec := doJSON(e, http.MethodPost, "/api/contact", validSubmission)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.ContactID)

	stored := repo.items[resp.ContactID]
	require.NotNil(t, stored)
	assert.Equal(t, "new", stored.Status)
	assert.True(t, stored.EmailSent)
	assert.Nil(t, stored.MeetingDate)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "jane@example.com", mail.sent[0].ReplyTo)
	assert.Equal(t, []string{"sales@example.com"}, mail.sent[0].To)
}

func TestSubmitMailFailureIsNonFatal(t *testing.T) {
	mail := &fakeMailer{fail: true}
	e, repo := setup(t, mail)

	rec := doJSON(e, http.MethodPost, "/api/contact", validSubmission)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, repo.items[resp.ContactID].EmailSent)
}

func TestSubmitValidation(t *testing.T) {
	e, _ := setup(t, &fakeMailer{})

	cases := []string{
		`{"name":"J","email":"jane@example.com","message":"long enough message"}`,
		`{"name":"Jane","email":"not-an-email","message":"long enough message"}`,
		`{"name":"Jane","email":"jane@example.com","message":"short"}`,
	}
	for _, body := range cases {
		rec := doJSON(e, http.MethodPost, "/api/contact", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
	}
}

func TestBookMeetingParsesCompoundMessage(t *testing.T) {
	e, repo := setup(t, &fakeMailer{})

	rec := doJSON(e, http.MethodPost, "/api/book-meeting", `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"service": "Acme",
		"message": "2025-02-10|14:30|Looking forward to it"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	stored := repo.items[resp.ContactID]
	require.NotNil(t, stored)
	require.NotNil(t, stored.MeetingDate)
	require.NotNil(t, stored.MeetingTime)
	assert.Equal(t, "2025-02-10", *stored.MeetingDate)
	assert.Equal(t, "14:30", *stored.MeetingTime)
	assert.Equal(t, "Looking forward to it", stored.Message)
}

func TestBookMeetingWithoutPipes(t *testing.T) {
	e, repo := setup(t, &fakeMailer{})

	rec := doJSON(e, http.MethodPost, "/api/book-meeting", `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"message": "just call me whenever"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	stored := repo.items[resp.ContactID]
	assert.Nil(t, stored.MeetingDate)
	assert.Nil(t, stored.MeetingTime)
	assert.Equal(t, "just call me whenever", stored.Message)
}

func TestParseMeetingMessage(t *testing.T) {
	cases := []struct {
		in                string
		date, time, notes string
	}{
		{"2025-02-10|14:30|notes here", "2025-02-10", "14:30", "notes here"},
		{"2025-02-10|14:30|", "2025-02-10", "14:30", ""},
		{"||only notes", "", "", "only notes"},
		{"2025-02-10|14:30", "2025-02-10", "14:30", ""},
		{"plain message", "", "", "plain message"},
		{"a|b|c|d", "a", "b", "c|d"},
	}
	for _, tc := range cases {
		date, meetingTime, notes := ParseMeetingMessage(tc.in)
		assert.Equal(t, tc.date, date, tc.in)
		assert.Equal(t, tc.time, meetingTime, tc.in)
		assert.Equal(t, tc.notes, notes, tc.in)
	}
}

func TestListStatusFilterAndPagination(t *testing.T) {
	e, repo := setup(t, &fakeMailer{})
	for i := 0; i < 3; i++ {
		rec := doJSON(e, http.MethodPost, "/api/contact", validSubmission)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	// Tag one of them.
	var tagged string
	for id := range repo.items {
		tagged = id
		break
	}
	require.Equal(t, http.StatusOK, doJSON(e, http.MethodPatch,
		"/api/admin/contacts/"+tagged+"/status", `{"status":"read"}`).Code)

	var resp ListResponse

	rec := doJSON(e, http.MethodGet, "/api/admin/contacts?page=1&limit=1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.Pages)

	rec = doJSON(e, http.MethodGet, "/api/admin/contacts?status_filter=read", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestUpdateStatusStoresVerbatim(t *testing.T) {
	e, repo := setup(t, &fakeMailer{})
	rec := doJSON(e, http.MethodPost, "/api/contact", validSubmission)
	var sub SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sub))

	rec = doJSON(e, http.MethodPatch, "/api/admin/contacts/"+sub.ContactID+"/status", `{"status":"banana"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "banana", repo.items[sub.ContactID].Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	e, _ := setup(t, &fakeMailer{})

	rec := doJSON(e, http.MethodPatch, "/api/admin/contacts/"+uuid.New().String()+"/status", `{"status":"read"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

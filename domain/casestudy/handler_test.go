package casestudy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
)

type fakeRepo struct {
	items map[string]*CaseStudy
	clock time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items: map[string]*CaseStudy{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRepo) sorted() []*CaseStudy {
	out := make([]*CaseStudy, 0, len(f.items))
	for _, cs := range f.items {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]CaseStudy, int, error) {
	matched := []CaseStudy{}
	for _, cs := range f.sorted() {
		if filter.PublishedOnly && !cs.Published {
			continue
		}
		if filter.Industry != "" && cs.Industry != filter.Industry {
			continue
		}
		matched = append(matched, *cs)
	}

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

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*CaseStudy, error) {
	for _, cs := range f.sorted() {
		if cs.Slug == slug {
			snapshot := *cs
			return &snapshot, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, cs *CaseStudy) error {
	now := f.tick()
	cs.ID = uuid.New().String()
	cs.CreatedAt = now
	cs.UpdatedAt = now
	stored := *cs
	f.items[cs.ID] = &stored
	return nil
}

func (f *fakeRepo) Update(_ context.Context, id string, patch Patch) error {
	cs, ok := f.items[id]
	if !ok {
		return ErrNotFound
	}
	if patch.Title != nil {
		cs.Title = *patch.Title
	}
	if patch.Slug != nil {
		cs.Slug = *patch.Slug
	}
	if patch.Industry != nil {
		cs.Industry = *patch.Industry
	}
	if patch.Technologies != nil {
		cs.Technologies = pq.StringArray(*patch.Technologies)
	}
	if patch.Published != nil {
		cs.Published = *patch.Published
	}
	cs.UpdatedAt = f.tick()
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func setup(t *testing.T) (*echo.Echo, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	h := NewHandler(repo, logger.Get())

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Get())
	e.GET("/api/case-studies", h.List)
	e.GET("/api/case-studies/:slug", h.GetBySlug)
	e.POST("/api/admin/case-studies", h.Create)
	e.PUT("/api/admin/case-studies/:id", h.Update)
	e.DELETE("/api/admin/case-studies/:id", h.Delete)
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

const longText = "This section is comfortably longer than the fifty character floor."

var validCaseStudy = `{
	"title": "Checkout Replatform for Acme",
	"client_name": "Acme",
	"industry": "retail",
	"challenge": "` + longText + `",
	"solution": "` + longText + `",
	"results": "` + longText + `",
	"technologies": ["go", "postgres"],
	"published": true
}`

func create(t *testing.T, e *echo.Echo, body string) MutationResponse {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/admin/case-studies", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp MutationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.CaseStudyID)
	return resp
}

func TestCreateDerivesSlug(t *testing.T) {
	e, repo := setup(t)

	resp := create(t, e, validCaseStudy)
	assert.Equal(t, "checkout-replatform-for-acme", repo.items[resp.CaseStudyID].Slug)
}

func TestCreateShortSections(t *testing.T) {
	e, _ := setup(t)

	body := strings.Replace(validCaseStudy, `"challenge": "`+longText+`"`, `"challenge": "too short"`, 1)
	rec := doJSON(e, http.MethodPost, "/api/admin/case-studies", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetBySlug(t *testing.T) {
	e, _ := setup(t)
	create(t, e, validCaseStudy)

	rec := doJSON(e, http.MethodGet, "/api/case-studies/checkout-replatform-for-acme", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cs CaseStudy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cs))
	assert.Equal(t, "Acme", cs.ClientName)

	rec = doJSON(e, http.MethodGet, "/api/case-studies/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListIndustryFilter(t *testing.T) {
	e, _ := setup(t)
	create(t, e, validCaseStudy)
	create(t, e, strings.Replace(
		strings.Replace(validCaseStudy, "Checkout Replatform for Acme", "Claims Portal for Umbrella", 1),
		`"industry": "retail"`, `"industry": "insurance"`, 1))

	var resp ListResponse

	rec := doJSON(e, http.MethodGet, "/api/case-studies", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)

	rec = doJSON(e, http.MethodGet, "/api/case-studies?industry=insurance", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "claims-portal-for-umbrella", resp.Data[0].Slug)
}

func TestListUnpublishedHiddenByDefault(t *testing.T) {
	e, _ := setup(t)
	create(t, e, strings.Replace(validCaseStudy, `"published": true`, `"published": false`, 1))

	var resp ListResponse

	rec := doJSON(e, http.MethodGet, "/api/case-studies", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Total)

	rec = doJSON(e, http.MethodGet, "/api/case-studies?published_only=false", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestUpdateTitleRecomputesSlug(t *testing.T) {
	e, repo := setup(t)
	resp := create(t, e, validCaseStudy)

	rec := doJSON(e, http.MethodPut, "/api/admin/case-studies/"+resp.CaseStudyID, `{"title":"Renamed Case Study"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed-case-study", repo.items[resp.CaseStudyID].Slug)
}

func TestUpdateEmptyPayload(t *testing.T) {
	e, _ := setup(t)
	resp := create(t, e, validCaseStudy)

	rec := doJSON(e, http.MethodPut, "/api/admin/case-studies/"+resp.CaseStudyID, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNotFound(t *testing.T) {
	e, _ := setup(t)

	rec := doJSON(e, http.MethodPut, "/api/admin/case-studies/"+uuid.New().String(), `{"industry":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDelete(t *testing.T) {
	e, repo := setup(t)
	resp := create(t, e, validCaseStudy)

	rec := doJSON(e, http.MethodDelete, "/api/admin/case-studies/"+resp.CaseStudyID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.items)

	rec = doJSON(e, http.MethodDelete, "/api/admin/case-studies/"+resp.CaseStudyID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"annotate-service/app/domain"
	mock_port "annotate-service/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer registers the annotation routes the way the router does.
func newTestServer(t *testing.T) (*echo.Echo, *mock_port.MockAnnotationUsecase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	usecase := mock_port.NewMockAnnotationUsecase(ctrl)
	h := NewAnnotationHandler(usecase, testLogger())

	e := echo.New()
	g := e.Group("/v1/annotations")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/new", h.NewForm)
	g.GET("/edit", h.Dispatch)
	g.GET("/export/json", h.ExportJSON)
	g.GET("/export/rdf", h.ExportRDF)
	g.GET("/:id", h.Get)
	g.GET("/:id/edit", h.EditForm)
	g.POST("/:id", h.Update)
	return e, usecase
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestAnnotationHandler_Create(t *testing.T) {
	t.Run("form post redirects to detail", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Create(gomock.Any(), domain.AnnotationInput{
			URI:    "http://x/1",
			Title:  "Example",
			TagIDs: []int64{5, 6},
		}).Return(&domain.Annotation{ID: 7, URI: "http://x/1"}, nil)

		rec := do(e, postForm("/v1/annotations", url.Values{
			"uri":   {"http://x/1"},
			"title": {"Example"},
			"tags":  {"5", "6"},
		}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/v1/annotations/7", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("json client receives the annotation", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Create(gomock.Any(), domain.AnnotationInput{URI: "http://x/1", TagIDs: []int64{5}}).
			Return(&domain.Annotation{ID: 7, URI: "http://x/1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/annotations", strings.NewReader(`{"uri":"http://x/1","tags":[5]}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		rec := do(e, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Annotation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("validation failure re-displays the form", func(t *testing.T) {
		e, usecase := newTestServer(t)
		input := domain.AnnotationInput{Title: "No uri"}
		usecase.EXPECT().Create(gomock.Any(), input).
			Return(nil, domain.NewValidationErrors(input, []domain.FieldError{{Field: "uri", Message: "is required"}}))

		rec := do(e, postForm("/v1/annotations", url.Values{"title": {"No uri"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var got FormErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "VALIDATION_FAILED", got.Code)
		assert.Equal(t, "No uri", got.Form.Input.Title)
		assert.Equal(t, []domain.FieldError{{Field: "uri", Message: "is required"}}, got.Form.Errors)
	})

	t.Run("non numeric tag is rejected before the usecase", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := do(e, postForm("/v1/annotations", url.Values{"uri": {"http://x/1"}, "tags": {"abc"}}))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var got FormErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Form.Errors, 1)
		assert.Equal(t, "tags", got.Form.Errors[0].Field)
	})

	t.Run("enrichment failure answers 500", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &domain.EnrichmentError{Plugin: "enhance_annotations", Op: "apply", Err: errors.New("boom")})

		rec := do(e, postForm("/v1/annotations", url.Values{"uri": {"http://x/1"}}))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var got ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ENRICHMENT_FAILED", got.Code)
	})
}

func TestAnnotationHandler_Update(t *testing.T) {
	t.Run("redirects to detail", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Update(gomock.Any(), int64(3), domain.AnnotationInput{URI: "http://x/1", Notes: "n"}).
			Return(&domain.Annotation{ID: 3}, nil)

		rec := do(e, postForm("/v1/annotations/3", url.Values{"uri": {"http://x/1"}, "notes": {"n"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/v1/annotations/3", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown id", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(nil, domain.ErrAnnotationNotFound)

		rec := do(e, postForm("/v1/annotations/99", url.Values{"uri": {"http://x/1"}}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := do(e, postForm("/v1/annotations/abc", url.Values{"uri": {"http://x/1"}}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnnotationHandler_Dispatch(t *testing.T) {
	t.Run("existing annotation goes to edit", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Resolve(gomock.Any(), "http://x/1").
			Return(&domain.AnnotationResolution{Action: domain.ResolutionEdit, URI: "http://x/1", AnnotationID: 4, Duplicates: 1}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/edit?uri="+url.QueryEscape("http://x/1"), nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/v1/annotations/4/edit", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown uri goes to create with quoted uri", func(t *testing.T) {
		e, usecase := newTestServer(t)
		uri := "http://x/a b?c=d&e"
		usecase.EXPECT().Resolve(gomock.Any(), uri).
			Return(&domain.AnnotationResolution{Action: domain.ResolutionCreate, URI: uri}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/edit?uri="+url.QueryEscape(uri), nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/v1/annotations/new?uri=http%3A%2F%2Fx%2Fa+b%3Fc%3Dd%26e", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("missing uri", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/edit", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var got ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "MISSING_FIELD", got.Code)
	})
}

func TestAnnotationHandler_Exports(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().ExportJSON(gomock.Any(), "http://x/1").
			Return(map[string]any{"title_txt": "Example", "tag_ss": []string{"history"}}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/export/json?uri=http://x/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"title_txt":"Example","tag_ss":["history"]}`, rec.Body.String())
	})

	t.Run("json without uri", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().ExportJSON(gomock.Any(), "").Return(nil, domain.ErrMissingURI)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/export/json", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rdf uses the serialization media type", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().ExportRDF(gomock.Any(), "http://x/1", "").
			Return([]byte("<rdf:RDF/>"), "application/rdf+xml", nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/export/rdf?uri=http://x/1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/rdf+xml", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "<rdf:RDF/>", rec.Body.String())
	})

	t.Run("rdf unknown format", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().ExportRDF(gomock.Any(), "http://x/1", "json-ld").
			Return(nil, "", domain.ErrUnsupportedFormat)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/export/rdf?uri=http://x/1&format=json-ld", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAnnotationHandler_Reads(t *testing.T) {
	t.Run("list passes paging", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().List(gomock.Any(), 10, 20).
			Return(&domain.AnnotationPage{Annotations: []domain.Annotation{}, Limit: 10, Offset: 20}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations?limit=10&offset=20", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list rejects bad limit", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations?limit=ten", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("detail", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Get(gomock.Any(), int64(3)).Return(&domain.Annotation{ID: 3, URI: "http://x/1", Tags: []domain.Concept{}}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/3", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"uri":"http://x/1"`)
	})

	t.Run("new form", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().NewForm(gomock.Any(), "http://x/1").
			Return(&domain.AnnotationForm{Input: domain.AnnotationInput{URI: "http://x/1"}}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/new?uri=http%3A%2F%2Fx%2F1", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("edit form", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().EditForm(gomock.Any(), int64(3)).Return(&domain.AnnotationForm{AnnotationID: 3}, nil)

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/3/edit", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database error is a 500", func(t *testing.T) {
		e, usecase := newTestServer(t)
		usecase.EXPECT().Get(gomock.Any(), int64(3)).Return(nil, errors.New("connection reset"))

		rec := do(e, httptest.NewRequest(http.MethodGet, "/v1/annotations/3", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/gucfolio/internal/api/http/context"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/mocks"
	"github.com/dtroode/gucfolio/internal/model"
	"github.com/dtroode/gucfolio/internal/testutil"
)

func newTestPortfolio(t *testing.T) (*Portfolio, *mocks.PortfolioService, *httpctx.Manager) {
	svc := mocks.NewPortfolioService(t)
	cm := httpctx.NewManager()
	return NewPortfolio(svc, cm, testutil.MakeNoopLogger(), 1<<20), svc, cm
}

func withUser(cm *httpctx.Manager, req *http.Request, user model.User) *http.Request {
	return req.WithContext(cm.SetUserToContext(req.Context(), user, "tok"))
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, cover []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if cover != nil {
		fw, err := mw.CreateFormFile("cover", "shot.png")
		require.NoError(t, err)
		_, err = fw.Write(cover)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestPortfolio_Summary(t *testing.T) {
	t.Parallel()

	owner := model.User{ID: uuid.New(), FirstName: "A", LastName: "B"}
	item := model.WorkItem{ID: uuid.New(), OwnerID: owner.ID, Title: "Compiler", CoverImage: "covers/1.png"}

	t.Run("page", func(t *testing.T) {
		t.Parallel()
		h, svc, _ := newTestPortfolio(t)
		svc.On("Summary", mock.Anything, 1).Return(model.Page[model.PortfolioSummary]{
			Count:   1,
			Results: []model.PortfolioSummary{{User: owner.Public(), Items: []model.WorkItem{item}}},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/summary/1", nil)
		req.SetPathValue("offset", "1")
		rec := httptest.NewRecorder()
		h.Summary(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, float64(1), body["count"])
		results := body["results"].([]any)
		require.Len(t, results, 1)
		entry := results[0].(map[string]any)
		assert.Equal(t, "A B", entry["user"].(map[string]any)["fullName"])
		assert.NotContains(t, entry["user"], "passwordHash")
		items := entry["items"].([]any)
		assert.Equal(t, "/uploads/covers/1.png", items[0].(map[string]any)["coverImage"])
		assert.Equal(t, []any{}, items[0].(map[string]any)["tags"])
	})

	t.Run("bad offset", func(t *testing.T) {
		t.Parallel()
		h, _, _ := newTestPortfolio(t)

		for _, offset := range []string{"0", "abc", "-1", "9223372036854775807", strconv.Itoa(model.MaxPage + 1)} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/summary/"+offset, nil)
			req.SetPathValue("offset", offset)
			rec := httptest.NewRecorder()
			h.Summary(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apierrors.MsgBadOffset, decodeJSON(t, rec)["message"])
		}
	})
}

func TestPortfolio_ListByTag(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTestPortfolio(t)
	tag := model.Tag{ID: uuid.New(), Name: "web"}
	svc.On("ListByTag", mock.Anything, "web", 2).Return(model.Page[model.WorkItem]{
		Count:   11,
		Results: []model.WorkItem{{ID: uuid.New(), Title: "Site", Tags: []model.Tag{tag}}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/tags/web/2", nil)
	req.SetPathValue("name", "web")
	req.SetPathValue("offset", "2")
	rec := httptest.NewRecorder()
	h.ListByTag(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, float64(11), body["count"])
	first := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "web", first["tags"].([]any)[0].(map[string]any)["name"])
}

func TestPortfolio_GetItem(t *testing.T) {
	t.Parallel()

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		h, _, _ := newTestPortfolio(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/items/xyz", nil)
		req.SetPathValue("id", "xyz")
		rec := httptest.NewRecorder()
		h.GetItem(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierrors.MsgBadID, decodeJSON(t, rec)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		h, svc, _ := newTestPortfolio(t)
		id := uuid.New()
		svc.On("GetItem", mock.Anything, id).Return(model.WorkItem{}, apierrors.NewErrItemNotFound()).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/items/"+id.String(), nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		h.GetItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		h, svc, _ := newTestPortfolio(t)
		item := model.WorkItem{ID: uuid.New(), Title: "Compiler", LiveDemo: "https://demo.example"}
		svc.On("GetItem", mock.Anything, item.ID).Return(item, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/items/"+item.ID.String(), nil)
		req.SetPathValue("id", item.ID.String())
		rec := httptest.NewRecorder()
		h.GetItem(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, "Compiler", body["title"])
		assert.Equal(t, "https://demo.example", body["liveDemo"])
		assert.NotContains(t, body, "coverImage")
	})
}

func TestPortfolio_GetProfile(t *testing.T) {
	t.Parallel()
	h, svc, _ := newTestPortfolio(t)
	user := model.User{ID: uuid.New(), FirstName: "A", LastName: "B", PasswordHash: "hash", GucID: "43-1234"}
	svc.On("GetProfile", mock.Anything, user.ID).Return(model.Profile{User: user.Public(), Items: []model.WorkItem{}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portfolio/users/"+user.ID.String(), nil)
	req.SetPathValue("id", user.ID.String())
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeJSON(t, rec)
	assert.Equal(t, "43-1234", body["gucId"])
	assert.Equal(t, []any{}, body["items"])
	assert.NotContains(t, body, "passwordResetTokenDate")
}

func TestPortfolio_CreateItem(t *testing.T) {
	t.Parallel()
	user := model.User{ID: uuid.New()}

	t.Run("multipart with cover", func(t *testing.T) {
		t.Parallel()
		h, svc, cm := newTestPortfolio(t)
		created := model.WorkItem{ID: uuid.New(), OwnerID: user.ID, Title: "Compiler", CoverImage: "covers/x.png", CreatedAt: time.Now()}

		var coverData string
		svc.On("CreateItem", mock.Anything, mock.MatchedBy(func(p model.CreateWorkItemParams) bool {
			return p.Cover != nil && p.OwnerID == user.ID && p.Title == "Compiler" &&
				p.GithubRepo == "https://github.com/a/b" && p.RawTags == "go, web" &&
				p.Cover.Filename == "shot.png" && p.Cover.Size == 3
		})).Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(1).(model.CreateWorkItemParams).Cover.Reader)
			require.NoError(t, err)
			coverData = string(data)
		}).Return(created, nil).Once()

		req := multipartRequest(t, http.MethodPost, "/api/v1/portfolio/items", map[string]string{
			"title": "Compiler", "repo": "https://github.com/a/b", "tags": "go, web",
		}, []byte("PNG"))
		rec := httptest.NewRecorder()
		h.CreateItem(rec, withUser(cm, req, user))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, float64(1), body["status"])
		assert.Equal(t, apierrors.MsgWorkAdded, body["message"])
		assert.Equal(t, "/uploads/covers/x.png", body["item"].(map[string]any)["coverImage"])
		assert.Equal(t, "PNG", coverData)
	})

	t.Run("itemized validation errors", func(t *testing.T) {
		t.Parallel()
		h, svc, cm := newTestPortfolio(t)
		svc.On("CreateItem", mock.Anything, mock.Anything).
			Return(model.WorkItem{}, apierrors.NewValidation(apierrors.MsgEmptyTitle, apierrors.MsgEmptyWork)).Once()

		req := multipartRequest(t, http.MethodPost, "/api/v1/portfolio/items", map[string]string{"description": "d"}, nil)
		rec := httptest.NewRecorder()
		h.CreateItem(rec, withUser(cm, req, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeJSON(t, rec)
		assert.Equal(t, []any{apierrors.MsgEmptyTitle, apierrors.MsgEmptyWork}, body["errors"])
	})

	t.Run("url encoded without cover", func(t *testing.T) {
		t.Parallel()
		h, svc, cm := newTestPortfolio(t)
		svc.On("CreateItem", mock.Anything, mock.MatchedBy(func(p model.CreateWorkItemParams) bool {
			return p.Cover == nil && p.LiveDemo == "https://demo.example" && p.Title == "Site"
		})).Return(model.WorkItem{ID: uuid.New(), Title: "Site"}, nil).Once()

		form := url.Values{"title": {"Site"}, "link": {"https://demo.example"}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/items", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.CreateItem(rec, withUser(cm, req, user))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("upload too large", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewPortfolioService(t)
		cm := httpctx.NewManager()
		h := NewPortfolio(svc, cm, testutil.MakeNoopLogger(), 64)

		req := multipartRequest(t, http.MethodPost, "/api/v1/portfolio/items", map[string]string{"title": "t"}, bytes.Repeat([]byte("x"), 1024))
		rec := httptest.NewRecorder()
		h.CreateItem(rec, withUser(cm, req, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierrors.MsgBadUpload, decodeJSON(t, rec)["message"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()
		h, _, _ := newTestPortfolio(t)
		rec := httptest.NewRecorder()
		h.CreateItem(rec, httptest.NewRequest(http.MethodPost, "/api/v1/portfolio/items", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPortfolio_UpdateItem(t *testing.T) {
	t.Parallel()
	user := model.User{ID: uuid.New()}
	id := uuid.New()

	t.Run("absent fields stay nil", func(t *testing.T) {
		t.Parallel()
		h, svc, cm := newTestPortfolio(t)
		svc.On("UpdateItem", mock.Anything, mock.MatchedBy(func(p model.UpdateWorkItemParams) bool {
			return p.ItemID == id && p.OwnerID == user.ID &&
				p.Title != nil && *p.Title == "New" &&
				p.RawTags != nil && *p.RawTags == "" && p.Description == nil && p.Cover == nil
		})).Return(model.WorkItem{ID: id, Title: "New"}, nil).Once()

		req := multipartRequest(t, http.MethodPut, "/api/v1/portfolio/items/"+id.String(), map[string]string{"title": "New", "tags": ""}, nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		h.UpdateItem(rec, withUser(cm, req, user))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, apierrors.MsgWorkUpdated, decodeJSON(t, rec)["message"])
	})

	t.Run("not owner", func(t *testing.T) {
		t.Parallel()
		h, svc, cm := newTestPortfolio(t)
		svc.On("UpdateItem", mock.Anything, mock.Anything).Return(model.WorkItem{}, apierrors.NewErrPermissionDenied()).Once()

		req := multipartRequest(t, http.MethodPut, "/api/v1/portfolio/items/"+id.String(), map[string]string{"title": "x"}, nil)
		req.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()
		h.UpdateItem(rec, withUser(cm, req, user))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apierrors.MsgPermissionDenied, decodeJSON(t, rec)["message"])
	})
}

func TestPortfolio_DeleteItem(t *testing.T) {
	t.Parallel()
	h, svc, cm := newTestPortfolio(t)
	user := model.User{ID: uuid.New()}
	id := uuid.New()
	svc.On("DeleteItem", mock.Anything, id, user.ID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/portfolio/items/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()
	h.DeleteItem(rec, withUser(cm, req, user))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, apierrors.MsgWorkDeleted, decodeJSON(t, rec)["message"])
}

func TestPortfolio_Cover(t *testing.T) {
	t.Parallel()

	t.Run("streams object", func(t *testing.T) {
		t.Parallel()
		h, svc, _ := newTestPortfolio(t)
		svc.On("OpenCover", mock.Anything, "covers/a.png").Return(model.Object{
			Body: io.NopCloser(strings.NewReader("PNGDATA")), ContentType: "image/png", Size: 7,
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/uploads/covers/a.png", nil)
		req.SetPathValue("key", "covers/a.png")
		rec := httptest.NewRecorder()
		h.Cover(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, "7", rec.Header().Get("Content-Length"))
		assert.Equal(t, "PNGDATA", rec.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		h, svc, _ := newTestPortfolio(t)
		svc.On("OpenCover", mock.Anything, "covers/none.png").Return(model.Object{}, apierrors.NewErrFileNotFound()).Once()

		req := httptest.NewRequest(http.MethodGet, "/uploads/covers/none.png", nil)
		req.SetPathValue("key", "covers/none.png")
		rec := httptest.NewRecorder()
		h.Cover(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apierrors.MsgFileNotFound, decodeJSON(t, rec)["message"])
	})
}

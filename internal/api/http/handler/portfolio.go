package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/api/http/response"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/model"
)

// PortfolioService defines feed queries and item management.
type PortfolioService interface {
	Summary(ctx context.Context, offset int) (model.Page[model.PortfolioSummary], error)
	ListByTag(ctx context.Context, tag string, offset int) (model.Page[model.WorkItem], error)
	GetItem(ctx context.Context, id uuid.UUID) (model.WorkItem, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	CreateItem(ctx context.Context, params model.CreateWorkItemParams) (model.WorkItem, error)
	UpdateItem(ctx context.Context, params model.UpdateWorkItemParams) (model.WorkItem, error)
	DeleteItem(ctx context.Context, itemID, ownerID uuid.UUID) error
	OpenCover(ctx context.Context, key string) (model.Object, error)
}

// Portfolio handles the /portfolio endpoints and serves uploaded covers.
type Portfolio struct {
	portfolioService PortfolioService
	contextManager   model.ContextManager
	logger           *logger.Logger
	maxUploadBytes   int64
}

func NewPortfolio(
	portfolioService PortfolioService,
	contextManager model.ContextManager,
	logger *logger.Logger,
	maxUploadBytes int64,
) *Portfolio {
	return &Portfolio{
		portfolioService: portfolioService,
		contextManager:   contextManager,
		logger:           logger,
		maxUploadBytes:   maxUploadBytes,
	}
}

type itemResponse struct {
	response.Message
	Item itemView `json:"item"`
}

func (h *Portfolio) Summary(w http.ResponseWriter, r *http.Request) {
	offset, err := pathOffset(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	page, err := h.portfolioService.Summary(r.Context(), offset)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	results := make([]summaryView, len(page.Results))
	for i, s := range page.Results {
		results[i] = summaryView{User: s.User, Items: newItemViews(s.Items)}
	}
	response.JSON(w, http.StatusOK, pageView[summaryView]{Count: page.Count, Results: results})
}

func (h *Portfolio) ListByTag(w http.ResponseWriter, r *http.Request) {
	offset, err := pathOffset(r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	page, err := h.portfolioService.ListByTag(r.Context(), r.PathValue("name"), offset)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, pageView[itemView]{Count: page.Count, Results: newItemViews(page.Results)})
}

func (h *Portfolio) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.portfolioService.GetItem(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, newItemView(item))
}

func (h *Portfolio) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	profile, err := h.portfolioService.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, profileView{PublicProfile: profile.User, Items: newItemViews(profile.Items)})
}

func (h *Portfolio) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	form, err := h.parseItemForm(w, r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	defer form.close()

	item, err := h.portfolioService.CreateItem(r.Context(), model.CreateWorkItemParams{
		OwnerID:     user.ID,
		Title:       form.value("title"),
		Description: form.value("description"),
		LiveDemo:    form.value("link"),
		GithubRepo:  form.value("repo"),
		RawTags:     form.value("tags"),
		Cover:       form.cover,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, itemResponse{
		Message: response.Message{Status: response.StatusSuccess, Message: apierrors.MsgWorkAdded},
		Item:    newItemView(item),
	})
}

func (h *Portfolio) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	form, err := h.parseItemForm(w, r)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	defer form.close()

	item, err := h.portfolioService.UpdateItem(r.Context(), model.UpdateWorkItemParams{
		ItemID:      id,
		OwnerID:     user.ID,
		Title:       form.optional("title"),
		Description: form.optional("description"),
		LiveDemo:    form.optional("link"),
		GithubRepo:  form.optional("repo"),
		RawTags:     form.optional("tags"),
		Cover:       form.cover,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, itemResponse{
		Message: response.Message{Status: response.StatusSuccess, Message: apierrors.MsgWorkUpdated},
		Item:    newItemView(item),
	})
}

func (h *Portfolio) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.portfolioService.DeleteItem(r.Context(), id, user.ID); err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.OK(w, apierrors.MsgWorkDeleted)
}

// Cover streams a stored cover image.
func (h *Portfolio) Cover(w http.ResponseWriter, r *http.Request) {
	obj, err := h.portfolioService.OpenCover(r.Context(), r.PathValue("key"))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	defer obj.Body.Close()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}
	if obj.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, obj.Body); err != nil {
		h.logger.Debug("Portfolio handler: cover stream interrupted",
			"key", r.PathValue("key"),
			"error", err.Error())
	}
}

// itemForm is a parsed multipart or url-encoded item submission.
type itemForm struct {
	values map[string][]string
	cover  *model.Upload
	file   multipart.File
}

func (f *itemForm) value(name string) string {
	if v := f.values[name]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// optional distinguishes an absent field from an empty one.
func (f *itemForm) optional(name string) *string {
	v, ok := f.values[name]
	if !ok {
		return nil
	}
	s := ""
	if len(v) > 0 {
		s = v[0]
	}
	return &s
}

func (f *itemForm) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func (h *Portfolio) parseItemForm(w http.ResponseWriter, r *http.Request) (*itemForm, error) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(h.memoryLimit()); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.logger.Debug("Portfolio handler: malformed item form",
			"error", err.Error())
		return nil, apierrors.NewErrBadUpload()
	}
	if r.MultipartForm == nil {
		if err := r.ParseForm(); err != nil {
			return nil, apierrors.NewErrBadBody()
		}
		return &itemForm{values: r.PostForm}, nil
	}

	form := &itemForm{values: r.MultipartForm.Value}
	file, header, err := r.FormFile("cover")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return nil, apierrors.NewErrBadUpload()
	default:
		form.file = file
		form.cover = &model.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      file,
		}
	}
	return form, nil
}

func (h *Portfolio) memoryLimit() int64 {
	const defaultMemory = 32 << 20
	if h.maxUploadBytes > 0 && h.maxUploadBytes < defaultMemory {
		return h.maxUploadBytes
	}
	return defaultMemory
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type TagService interface {
	CreateMuseumTag(ctx context.Context, tag domain.MuseumTag) (domain.MuseumTag, error)
	ListMuseumTags(ctx context.Context) ([]domain.MuseumTag, error)
	DeleteMuseumTag(ctx context.Context, id uint) error
	CreatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error)
	ListPreferenceTags(ctx context.Context) ([]domain.PreferenceTag, error)
	UpdatePreferenceTag(ctx context.Context, tag domain.PreferenceTag) (domain.PreferenceTag, error)
	DeletePreferenceTag(ctx context.Context, id uint) error
}

type TagHandler struct {
	svc  TagService
	uSvc UserService
}

func NewTagHandler(svc TagService, uSvc UserService) *TagHandler {
	return &TagHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *TagHandler) requireAdmin(ctx *gin.Context) bool {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return false
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v cannot manage tags", user.ID)))
		return false
	}

	return true
}

// HandleListMuseumTags godoc
// @Summary      List museum tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   domain.MuseumTag
// @Failure      500  {object}  response.Err
// @Router       /museum-tags [get]
func (h *TagHandler) HandleListMuseumTags(ctx *gin.Context) {
	tags, err := h.svc.ListMuseumTags(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMuseumTags -> h.svc.ListMuseumTags -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

// HandleCreateMuseumTag godoc
// @Summary      Create a museum tag
// @Description  Admin only. Type must be one of the fixed museum tag types.
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateMuseumTagRequest  true  "Tag details"
// @Success      201  {object}  domain.MuseumTag
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museum-tags [post]
// @Security     BearerAuth
func (h *TagHandler) HandleCreateMuseumTag(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	var req request.CreateMuseumTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tag := domain.MuseumTag{
		Type:             domain.MuseumTagType(req.Type),
		HistoricalPeriod: req.HistoricalPeriod,
	}

	created, err := h.svc.CreateMuseumTag(ctx.Request.Context(), tag)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTagType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleCreateMuseumTag -> h.svc.CreateMuseumTag -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleDeleteMuseumTag godoc
// @Summary      Delete a museum tag
// @Description  Admin only
// @Tags         tags
// @Produce      json
// @Param        tagID  path  int  true  "Tag ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museum-tags/{tagID} [delete]
// @Security     BearerAuth
func (h *TagHandler) HandleDeleteMuseumTag(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	tagID, err := parseUintParam(ctx, "tagID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteMuseumTag(ctx.Request.Context(), tagID); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tag", "ID", tagID))
			return
		}

		err = fmt.Errorf("HandleDeleteMuseumTag -> h.svc.DeleteMuseumTag -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListPreferenceTags godoc
// @Summary      List preference tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   domain.PreferenceTag
// @Failure      500  {object}  response.Err
// @Router       /preference-tags [get]
func (h *TagHandler) HandleListPreferenceTags(ctx *gin.Context) {
	tags, err := h.svc.ListPreferenceTags(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListPreferenceTags -> h.svc.ListPreferenceTags -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

// HandleCreatePreferenceTag godoc
// @Summary      Create a preference tag
// @Description  Admin only
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        input  body      request.SavePreferenceTagRequest  true  "Tag details"
// @Success      201  {object}  domain.PreferenceTag
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /preference-tags [post]
// @Security     BearerAuth
func (h *TagHandler) HandleCreatePreferenceTag(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	var req request.SavePreferenceTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tag := domain.PreferenceTag{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := h.svc.CreatePreferenceTag(ctx.Request.Context(), tag)
	if err != nil {
		err = fmt.Errorf("HandleCreatePreferenceTag -> h.svc.CreatePreferenceTag -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdatePreferenceTag godoc
// @Summary      Update a preference tag
// @Description  Admin only
// @Tags         tags
// @Accept       json
// @Produce      json
// @Param        tagID  path  int  true  "Tag ID"
// @Param        input  body      request.SavePreferenceTagRequest  true  "Tag details"
// @Success      200  {object}  domain.PreferenceTag
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /preference-tags/{tagID} [put]
// @Security     BearerAuth
func (h *TagHandler) HandleUpdatePreferenceTag(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	tagID, err := parseUintParam(ctx, "tagID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SavePreferenceTagRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tag := domain.PreferenceTag{
		ID:          tagID,
		Name:        req.Name,
		Description: req.Description,
	}

	updated, err := h.svc.UpdatePreferenceTag(ctx.Request.Context(), tag)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tag", "ID", tagID))
			return
		}

		err = fmt.Errorf("HandleUpdatePreferenceTag -> h.svc.UpdatePreferenceTag -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeletePreferenceTag godoc
// @Summary      Delete a preference tag
// @Description  Admin only
// @Tags         tags
// @Produce      json
// @Param        tagID  path  int  true  "Tag ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /preference-tags/{tagID} [delete]
// @Security     BearerAuth
func (h *TagHandler) HandleDeletePreferenceTag(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	tagID, err := parseUintParam(ctx, "tagID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeletePreferenceTag(ctx.Request.Context(), tagID); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tag", "ID", tagID))
			return
		}

		err = fmt.Errorf("HandleDeletePreferenceTag -> h.svc.DeletePreferenceTag -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tourista-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tourista-api/internal/catalog"
	"github.com/vietanh2810/tourista-api/internal/domain"
	"github.com/vietanh2810/tourista-api/internal/service"
)

type MuseumService interface {
	ListMuseums(ctx context.Context, criteria catalog.Criteria) ([]domain.Museum, error)
	CreateMuseum(ctx context.Context, museum domain.Museum) (domain.Museum, error)
	GetMuseum(ctx context.Context, id uint) (domain.Museum, error)
	UpdateMuseum(ctx context.Context, museum domain.Museum) (domain.Museum, error)
	DeleteMuseum(ctx context.Context, id uint) error
}

type MuseumHandler struct {
	svc  MuseumService
	uSvc UserService
}

func NewMuseumHandler(svc MuseumService, uSvc UserService) *MuseumHandler {
	return &MuseumHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

func (h *MuseumHandler) requireAdmin(ctx *gin.Context) bool {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return false
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return false
	}

	return true
}

func museumFromRequest(req request.SaveMuseumRequest) domain.Museum {
	museum := domain.Museum{
		Name:         req.Name,
		Description:  req.Description,
		Pictures:     req.Pictures,
		Location:     req.Location,
		OpeningHours: req.OpeningHours,
		TicketPrices: domain.TicketPrices{
			Foreigner: req.TicketPrices.Foreigner,
			Native:    req.TicketPrices.Native,
			Student:   req.TicketPrices.Student,
		},
		Tags: req.Tags,
	}

	if req.Rating != nil {
		museum.Rating = *req.Rating
	}

	return museum
}

// HandleListMuseums godoc
// @Summary      List museums
// @Description  Lists museums with optional search, numeric filter and sort
// @Tags         museums
// @Produce      json
// @Param        search    query  string  false  "Substring matched against name, description and location"
// @Param        filterBy  query  string  false  "price, quantity or rating"
// @Param        value     query  number  false  "Bound for filterBy"
// @Param        sortBy    query  string  false  "name, price or rating"
// @Success      200  {array}   domain.Museum
// @Failure      500  {object}  response.Err
// @Router       /museums [get]
func (h *MuseumHandler) HandleListMuseums(ctx *gin.Context) {
	museums, err := h.svc.ListMuseums(ctx.Request.Context(), parseCriteria(ctx))
	if err != nil {
		err = fmt.Errorf("HandleListMuseums -> h.svc.ListMuseums -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, museums)
}

// HandleCreateMuseum godoc
// @Summary      Create a museum
// @Description  Creates a museum. Admin only.
// @Tags         museums
// @Accept       json
// @Produce      json
// @Param        input  body      request.SaveMuseumRequest  true  "Museum details"
// @Success      201  {object}  domain.Museum
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museums [post]
// @Security     BearerAuth
func (h *MuseumHandler) HandleCreateMuseum(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	var req request.SaveMuseumRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateMuseum(ctx.Request.Context(), museumFromRequest(req))
	if err != nil {
		err = fmt.Errorf("HandleCreateMuseum -> h.svc.CreateMuseum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleGetMuseum godoc
// @Summary      Get a museum
// @Description  Retrieves a museum by id
// @Tags         museums
// @Produce      json
// @Param        museumID  path  int  true  "Museum ID"
// @Success      200  {object}  domain.Museum
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museums/{museumID} [get]
func (h *MuseumHandler) HandleGetMuseum(ctx *gin.Context) {
	museumID, err := parseUintParam(ctx, "museumID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	museum, err := h.svc.GetMuseum(ctx.Request.Context(), museumID)
	if err != nil {
		if errors.Is(err, service.ErrMuseumNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("museum", "ID", museumID))
			return
		}

		err = fmt.Errorf("HandleGetMuseum -> h.svc.GetMuseum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, museum)
}

// HandleUpdateMuseum godoc
// @Summary      Update a museum
// @Description  Replaces the whole museum document. Admin only.
// @Tags         museums
// @Accept       json
// @Produce      json
// @Param        museumID  path  int  true  "Museum ID"
// @Param        input  body      request.SaveMuseumRequest  true  "Museum details"
// @Success      200  {object}  domain.Museum
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museums/{museumID} [put]
// @Security     BearerAuth
func (h *MuseumHandler) HandleUpdateMuseum(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	museumID, err := parseUintParam(ctx, "museumID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.SaveMuseumRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// Full-document PUT keeps the stored rating and timestamps; only
	// the editable fields come from the request.
	existing, err := h.svc.GetMuseum(ctx.Request.Context(), museumID)
	if err != nil {
		if errors.Is(err, service.ErrMuseumNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("museum", "ID", museumID))
			return
		}

		err = fmt.Errorf("HandleUpdateMuseum -> h.svc.GetMuseum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Pictures = req.Pictures
	existing.Location = req.Location
	existing.OpeningHours = req.OpeningHours
	existing.TicketPrices = domain.TicketPrices{
		Foreigner: req.TicketPrices.Foreigner,
		Native:    req.TicketPrices.Native,
		Student:   req.TicketPrices.Student,
	}
	existing.Tags = req.Tags
	if req.Rating != nil {
		existing.Rating = *req.Rating
	}

	updated, err := h.svc.UpdateMuseum(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrMuseumNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("museum", "ID", museumID))
			return
		}

		err = fmt.Errorf("HandleUpdateMuseum -> h.svc.UpdateMuseum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteMuseum godoc
// @Summary      Delete a museum
// @Description  Hard-deletes a museum. Admin only.
// @Tags         museums
// @Produce      json
// @Param        museumID  path  int  true  "Museum ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /museums/{museumID} [delete]
// @Security     BearerAuth
func (h *MuseumHandler) HandleDeleteMuseum(ctx *gin.Context) {
	if !h.requireAdmin(ctx) {
		return
	}

	museumID, err := parseUintParam(ctx, "museumID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteMuseum(ctx.Request.Context(), museumID); err != nil {
		if errors.Is(err, service.ErrMuseumNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("museum", "ID", museumID))
			return
		}

		err = fmt.Errorf("HandleDeleteMuseum -> h.svc.DeleteMuseum -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "museum deleted"})
}

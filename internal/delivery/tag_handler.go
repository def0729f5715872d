package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TagHandler struct {
	useCase usecase.TagUseCase
	log     *logrus.Logger
}

func NewTagHandler(uc usecase.TagUseCase, logger *logrus.Logger) *TagHandler {
	return &TagHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *TagHandler) RegisterRoutes(router gin.IRouter) {
	tags := router.Group("/tags")
	{
		tags.POST("", h.CreateTag)
		tags.GET("", h.ListTags)
		tags.GET("/:id", h.GetTagByID)
		tags.PUT("/:id", h.UpdateTag)
		tags.DELETE("/:id", h.DeleteTag)
	}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var input domain.TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for create tag: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tag, err := h.useCase.CreateTag(c.Request.Context(), input)
	if err != nil {
		h.log.Errorf("Failed to create tag '%s': %v", input.Name, err)
		if errors.Is(err, domain.ErrValidation) {
			ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to create tag")
		return
	}

	h.log.Infof("Tag created successfully: ID %d, Name %s", tag.ID, tag.Name)
	SuccessResponse(c, http.StatusCreated, tag)
}

func (h *TagHandler) GetTagByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag ID format")
		return
	}

	tag, err := h.useCase.GetTagByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get tag by ID %d: %v", id, err)
		failWith(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag ID format")
		return
	}

	var update domain.TagUpdate
	if err := bindOptionalJSON(c, &update); err != nil {
		h.log.Errorf("Failed to bind JSON for update tag ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tag, err := h.useCase.UpdateTag(c.Request.Context(), id, update)
	if err != nil {
		h.log.Errorf("Failed to update tag ID %d: %v", id, err)
		failWith(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag ID format")
		return
	}

	if err := h.useCase.DeleteTag(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete tag ID %d: %v", id, err)
		failWith(c, err)
		return
	}

	h.log.Infof("Tag deleted successfully: ID %d", id)
	MessageResponse(c, http.StatusOK, "Tag deleted successfully")
}

func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.useCase.ListTags(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list tags: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve tags")
		return
	}
	SuccessResponse(c, http.StatusOK, tags)
}

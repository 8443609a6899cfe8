package prompt

import (
	"errors"
	"net/http"

	"github.com/filipefdm/rocketseat-prompt-manager/internal/actions"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/models"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/services"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/utils"
	"github.com/filipefdm/rocketseat-prompt-manager/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxFormMemory = 32 << 20

type Handler struct {
	service *services.PromptService
}

func NewHandler(service *services.PromptService) *Handler {
	return &Handler{service: service}
}

// SearchPrompts godoc
// @Summary Search prompts from a form submission
// @Description Reads the "q" form field and searches prompts by title or content. A blank term lists every prompt. The outcome is reported in the body's success flag.
// @Tags prompts
// @Accept x-www-form-urlencoded
// @Produce json
// @Param q formData string false "Search term"
// @Success 200 {object} actions.SearchPromptResult
// @Failure 400 {object} utils.Response
// @Router /prompts/search [post]
func (h *Handler) SearchPrompts(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid form submission"))
		return
	}

	result := actions.SearchPromptAction(c.Request.Context(), h.service, c.Request.PostForm)
	c.JSON(http.StatusOK, result)
}

// ListPrompts godoc
// @Summary List prompts
// @Description List prompts newest first, filtered by title or content when q is given
// @Tags prompts
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} utils.Response{data=PromptListResponse}
// @Failure 500 {object} utils.Response
// @Router /prompts [get]
func (h *Handler) ListPrompts(c *gin.Context) {
	term := c.Query("q")

	prompts, err := h.service.Search(c.Request.Context(), term)
	if err != nil {
		logger.Log.Error("Failed to list prompts", zap.String("term", term), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to list prompts"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PromptListResponse{
		Total: len(prompts),
		Items: models.Summaries(prompts),
	}))
}

// GetPrompt godoc
// @Summary Get a prompt
// @Description Get a prompt by ID
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.Response{data=models.Prompt}
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts/{id} [get]
func (h *Handler) GetPrompt(c *gin.Context) {
	prompt, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrPromptNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
		return
	}
	if err != nil {
		logger.Log.Error("Failed to get prompt", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to get prompt"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", prompt))
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Description Store a new prompt
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Create Prompt Request"
// @Success 201 {object} utils.Response{data=models.Prompt}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /prompts [post]
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.service.Create(c.Request.Context(), req.Title, req.Content)
	if errors.Is(err, services.ErrPromptTitleRequired) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Title is required"))
		return
	}
	if err != nil {
		logger.Log.Error("Failed to create prompt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create prompt"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewCreatedResponse("Prompt created successfully", prompt))
}

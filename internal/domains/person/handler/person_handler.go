package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rinha-backend/internal/domains/person/model"
	"rinha-backend/internal/domains/person/service"
	"rinha-backend/internal/shared/middleware"
	"rinha-backend/internal/shared/response"
)

type PersonHandler struct {
	service service.ServiceInterface
}

func NewPersonHandler(svc service.ServiceInterface) *PersonHandler {
	return &PersonHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /pessoas
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Create(c *gin.Context) {
	var req model.CreatePersonRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/pessoas/"+p.ID.String())
	c.JSON(http.StatusCreated, model.CreatePersonResponse{ID: p.ID})
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /pessoas/:id
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) GetByID(c *gin.Context) {
	// Only UUID ids exist, anything else is simply not found
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, model.ErrPersonNotFound.Error())
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ════════════════════════════════════════════════════════════════
// READ: Search - GET /pessoas?t=term
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Search(c *gin.Context) {
	people, err := h.service.Search(c.Request.Context(), c.Query("t"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(people))
}

// ════════════════════════════════════════════════════════════════
// READ: Count - GET /contagem-pessoas
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.String(http.StatusOK, strconv.FormatInt(count, 10))
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /getAllPessoa
// ════════════════════════════════════════════════════════════════

func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(people))
}

func (h *PersonHandler) writeError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(middleware.ContextKeyRequestID)).
			Str("path", c.Request.URL.Path).
			Msg("person request failed")
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), model.ToErrorMessage(err))
}

// nonNil makes empty results encode as [] instead of null
func nonNil(people []model.Person) []model.Person {
	if people == nil {
		return []model.Person{}
	}
	return people
}

package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"produto-service/internal/domain"
)

// ProdutoService is the registry surface the transport depends on.
type ProdutoService interface {
	Register(ctx context.Context, p domain.Produto) (*domain.Produto, error)
	Update(ctx context.Context, id int64, p domain.Produto) (*domain.Produto, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Produto, error)
	ListAll(ctx context.Context) ([]domain.Produto, error)
}

// Deps carries the service dependencies of the router.
type Deps struct {
	ProdutoSvc ProdutoService
}

type produtoHandler struct {
	svc    ProdutoService
	logger *log.Logger
}

func newProdutoHandler(svc ProdutoService, logger *log.Logger) *produtoHandler {
	return &produtoHandler{svc: svc, logger: logger}
}

type produtoRequest struct {
	ID    *int64   `json:"id"`
	Nome  string   `json:"nome" binding:"required"`
	SKU   string   `json:"sku" binding:"required"`
	Preco *float64 `json:"preco" binding:"required,gte=0"`
}

func (r produtoRequest) toDomain() domain.Produto {
	p := domain.Produto{
		Nome:  r.Nome,
		SKU:   r.SKU,
		Preco: *r.Preco,
	}
	if r.ID != nil {
		p.ID = *r.ID
	}
	return p
}

func (h *produtoHandler) cadastrar(c *gin.Context) {
	var req produtoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	p, err := h.svc.Register(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrSKUConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "cadastrar", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *produtoHandler) atualizar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}

	var req produtoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		h.internalError(c, "atualizar", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *produtoHandler) buscarPorSKU(c *gin.Context) {
	sku := c.Param("sku")

	p, err := h.svc.FindBySKU(c.Request.Context(), sku)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Produto não encontrado para SKU: " + sku})
			return
		}
		h.internalError(c, "buscarPorSKU", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *produtoHandler) listar(c *gin.Context) {
	produtos, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "listar", err)
		return
	}
	if produtos == nil {
		produtos = []domain.Produto{}
	}
	c.JSON(http.StatusOK, produtos)
}

// badRequest turns binding failures into the API's validation shape: field
// level errors become a {field: message} map, one message per field; anything
// else gets the single-error shape.
func (h *produtoHandler) badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "requisição inválida"})
}

func (h *produtoHandler) internalError(c *gin.Context, op string, err error) {
	h.logger.Printf("produto handler: %s error=%v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno no servidor"})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	default:
		return "valor inválido"
	}
}

// jsonFieldName resolves a struct field to its json tag name for validation
// error keys.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"produto-service/internal/httpserver/openapi"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	registerFieldNames()

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", openapi.YAML)
	})

	h := newProdutoHandler(deps.ProdutoSvc, logger)
	router.POST("/produtos", h.cadastrar)
	router.PUT("/produtos/:id", h.atualizar)
	router.GET("/produtos/:sku", h.buscarPorSKU)
	router.GET("/produtos", h.listar)

	return router, nil
}

// registerFieldNames makes validator report json field names, so validation
// errors key on "nome"/"sku"/"preco" instead of Go identifiers.
func registerFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
}

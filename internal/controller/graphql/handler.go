package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Handler handles GraphQL requests
type Handler struct {
	schema *Schema
	logger *zap.Logger
}

// NewHandler creates a new GraphQL handler
func NewHandler(schema *Schema, logger *zap.Logger) *Handler {
	return &Handler{
		schema: schema,
		logger: logger,
	}
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// RegisterRoutes registers GraphQL routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/graphql", h.handleGraphQL)
	router.GET("/graphql", h.handleGraphQL) // query via GET
}

// handleGraphQL handles GraphQL requests
func (h *Handler) handleGraphQL(c *gin.Context) {
	var req GraphQLRequest

	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []map[string]string{
					{"message": "Invalid request body"},
				},
			})
			return
		}
	} else {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if variables := c.Query("variables"); variables != "" {
			json.Unmarshal([]byte(variables), &req.Variables)
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema.Schema(),
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        c.Request.Context(),
	})

	c.JSON(http.StatusOK, result)
}

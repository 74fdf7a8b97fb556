package handlers

import (
	"net/http"

	"storefront/internal/logger"
	wooapi "storefront/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	catalog Catalog
	logger  *logger.Logger
}

func NewCategoryHandler(catalog Catalog, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalog: catalog,
		logger:  logger,
	}
}

type categoryQuery struct {
	PerPage   int   `form:"per_page" binding:"omitempty,min=1,max=100"`
	HideEmpty *bool `form:"hide_empty"`
	Parent    *int  `form:"parent" binding:"omitempty,min=0"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var query categoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	categories, err := h.catalog.ListCategories(c.Request.Context(), wooapi.CategoryFilters{
		PerPage:   query.PerPage,
		HideEmpty: query.HideEmpty,
		Parent:    query.Parent,
	})
	if err != nil {
		respondCatalogError(c, h.logger, "list categories", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

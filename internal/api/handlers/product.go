package handlers

import (
	"context"
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog Catalog
	logger  *logger.Logger
}

func NewProductHandler(catalog Catalog, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

type productQuery struct {
	PerPage    int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Featured   *bool  `form:"featured"`
	OrderBy    string `form:"orderby"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	Category   string `form:"category"`
	ProductCat string `form:"product_cat"`
	Status     string `form:"status"`
}

type limitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// List returns one page of products along with the store's pagination totals.
func (h *ProductHandler) List(c *gin.Context) {
	var query productQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := wooapi.ProductFilters{
		PerPage:    query.PerPage,
		Page:       query.Page,
		Featured:   query.Featured,
		OrderBy:    query.OrderBy,
		Order:      query.Order,
		Category:   query.Category,
		ProductCat: query.ProductCat,
		Status:     query.Status,
	}

	page, err := h.catalog.ListProductsPaged(c.Request.Context(), filters)
	if err != nil {
		respondCatalogError(c, h.logger, "list products", err)
		return
	}

	perPage := query.PerPage
	if perPage == 0 {
		perPage = wooapi.DefaultPerPage
	}
	current := query.Page
	if current == 0 {
		current = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"data": page.Products,
		"pagination": gin.H{
			"page":        current,
			"per_page":    perPage,
			"total_pages": page.TotalPages,
			"total_items": page.TotalItems,
		},
	})
}

func (h *ProductHandler) Featured(c *gin.Context) {
	h.collection(c, "list featured products", h.catalog.FeaturedProducts)
}

func (h *ProductHandler) BestSelling(c *gin.Context) {
	h.collection(c, "list best-selling products", h.catalog.BestSellingProducts)
}

func (h *ProductHandler) New(c *gin.Context) {
	h.collection(c, "list new products", h.catalog.NewProducts)
}

func (h *ProductHandler) collection(c *gin.Context, action string, fetch func(context.Context, int) ([]models.Product, error)) {
	var query limitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := fetch(c.Request.Context(), query.Limit)
	if err != nil {
		respondCatalogError(c, h.logger, action, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		if wooapi.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		respondCatalogError(c, h.logger, "fetch product", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondCatalogError(c, h.logger, "fetch product by slug", err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

// Reviews never fails: the adapter already degrades to an empty list.
func (h *ProductHandler) Reviews(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	reviews := h.catalog.ListProductReviews(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"data": reviews})
}

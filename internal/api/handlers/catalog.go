package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
)

// Catalog is the read side of the WooCommerce adapter served over HTTP.
type Catalog interface {
	ListProductsPaged(ctx context.Context, filters wooapi.ProductFilters) (*models.ProductPage, error)
	FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	BestSellingProducts(ctx context.Context, limit int) ([]models.Product, error)
	NewProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListCategories(ctx context.Context, filters wooapi.CategoryFilters) ([]models.Category, error)
	ListProductReviews(ctx context.Context, productID int) []models.Review
	TestConnection(ctx context.Context) models.ProbeResult
}

// respondCatalogError maps adapter failures onto HTTP statuses. Anything the
// upstream store rejected other than a 404 is reported as a bad gateway.
func respondCatalogError(c *gin.Context, log *logger.Logger, action string, err error) {
	var decodeErr *wooapi.DecodeError

	switch {
	case wooapi.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	case errors.Is(err, context.Canceled):
		log.Debug("Client went away while trying to %s", action)
		c.Status(499)
		return
	case errors.As(err, &decodeErr):
		log.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Unexpected response from store"})
		return
	}

	log.Error("Failed to %s: %v", action, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Store unavailable"})
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return 0, false
	}
	return id, true
}

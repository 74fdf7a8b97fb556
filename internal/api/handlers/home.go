package handlers

import (
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// HomeHandler assembles the storefront landing page in a single round trip.
type HomeHandler struct {
	catalog Catalog
	logger  *logger.Logger
}

func NewHomeHandler(catalog Catalog, logger *logger.Logger) *HomeHandler {
	return &HomeHandler{
		catalog: catalog,
		logger:  logger,
	}
}

func (h *HomeHandler) Get(c *gin.Context) {
	var (
		featured    []models.Product
		bestSelling []models.Product
		newest      []models.Product
		categories  []models.Category
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		featured, err = h.catalog.FeaturedProducts(ctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		bestSelling, err = h.catalog.BestSellingProducts(ctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		newest, err = h.catalog.NewProducts(ctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.catalog.ListCategories(ctx, wooapi.CategoryFilters{})
		return err
	})

	if err := g.Wait(); err != nil {
		respondCatalogError(c, h.logger, "build home page", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"featured":    featured,
			"bestSelling": bestSelling,
			"new":         newest,
			"categories":  categories,
		},
	})
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"
)

// Catalog is what catalogctl needs from the WooCommerce adapter.
type Catalog interface {
	ListProducts(ctx context.Context, filters wooapi.ProductFilters) ([]models.Product, error)
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

var errProbeFailed = errors.New("connection test failed")

// NewRootCommand builds the catalogctl command tree around catalog.
func NewRootCommand(catalog Catalog) *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Query a WooCommerce catalog through the storefront adapter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall request timeout")

	withTimeout := func(cmd *cobra.Command) (context.Context, context.CancelFunc) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if timeout <= 0 {
			return context.WithCancel(ctx)
		}
		return context.WithTimeout(ctx, timeout)
	}

	root.AddCommand(
		newProbeCommand(catalog, withTimeout),
		newProductsCommand(catalog, withTimeout),
		newCollectionCommand("featured", "List featured products", wooapi.DefaultFeaturedLimit, catalog.FeaturedProducts, withTimeout),
		newCollectionCommand("best-selling", "List best-selling products", wooapi.DefaultBestSellingLimit, catalog.BestSellingProducts, withTimeout),
		newCollectionCommand("new", "List the newest products", wooapi.DefaultNewLimit, catalog.NewProducts, withTimeout),
		newProductCommand(catalog, withTimeout),
		newCategoriesCommand(catalog, withTimeout),
		newReviewsCommand(catalog, withTimeout),
	)

	return root
}

type contextFunc func(cmd *cobra.Command) (context.Context, context.CancelFunc)

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

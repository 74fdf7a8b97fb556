package woocommerce

import (
	"context"
	"fmt"
	"strconv"

	"storefront/internal/models"
)

const (
	DefaultFeaturedLimit    = 4
	DefaultBestSellingLimit = 4
	DefaultNewLimit         = 8
	DefaultPerPage          = 10

	defaultStatus = "publish"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ProductFilters narrows a product listing. Zero values leave the backend
// default (or the per_page/status defaults) in place.
type ProductFilters struct {
	PerPage    int
	Page       int
	Featured   *bool
	OrderBy    string
	Order      string
	Category   string
	ProductCat string
	Status     string
}

// Params renders the filters in request order: per_page, status, page,
// featured, orderby, order, category, product_cat.
func (f ProductFilters) Params() Params {
	params := Params{
		{Key: "per_page", Value: strconv.Itoa(DefaultPerPage)},
		{Key: "status", Value: defaultStatus},
	}
	if f.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}
	if f.Featured != nil {
		params.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if f.OrderBy != "" {
		params.Set("orderby", f.OrderBy)
	}
	if f.Order != "" {
		params.Set("order", f.Order)
	}
	if f.Category != "" {
		params.Set("category", f.Category)
	}
	if f.ProductCat != "" {
		params.Set("product_cat", f.ProductCat)
	}
	return params
}

type CategoryFilters struct {
	PerPage   int
	HideEmpty *bool
	Parent    *int
}

func (f CategoryFilters) Params() Params {
	params := Params{
		{Key: "per_page", Value: strconv.Itoa(DefaultPerPage)},
		{Key: "hide_empty", Value: "true"},
	}
	if f.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.HideEmpty != nil {
		params.Set("hide_empty", strconv.FormatBool(*f.HideEmpty))
	}
	if f.Parent != nil {
		params.Set("parent", strconv.Itoa(*f.Parent))
	}
	return params
}

func (c *Client) ListProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	var raw []Product
	if err := c.fetch(ctx, "products", filters.Params(), &raw); err != nil {
		return nil, err
	}
	return c.transformer.TransformProducts(raw), nil
}

func (c *Client) ListProductsPaged(ctx context.Context, filters ProductFilters) (*models.ProductPage, error) {
	var raw []Product
	page, err := c.fetchWithPagination(ctx, "products", filters.Params(), &raw)
	if err != nil {
		return nil, err
	}
	return &models.ProductPage{
		Products:   c.transformer.TransformProducts(raw),
		TotalPages: page.totalPages,
		TotalItems: page.totalItems,
	}, nil
}

// FeaturedProducts lists the newest featured products.
func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	featured := true
	return c.ListProducts(ctx, ProductFilters{
		Featured: &featured,
		PerPage:  limitOrDefault(limit, DefaultFeaturedLimit),
		OrderBy:  "date",
		Order:    OrderDesc,
	})
}

func (c *Client) BestSellingProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return c.ListProducts(ctx, ProductFilters{
		PerPage: limitOrDefault(limit, DefaultBestSellingLimit),
		OrderBy: "popularity",
		Order:   OrderDesc,
	})
}

func (c *Client) NewProducts(ctx context.Context, limit int) ([]models.Product, error) {
	return c.ListProducts(ctx, ProductFilters{
		PerPage: limitOrDefault(limit, DefaultNewLimit),
		OrderBy: "date",
		Order:   OrderDesc,
	})
}

// GetProduct fetches one product by id. A missing product surfaces as an
// *HTTPError with status 404.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var raw Product
	if err := c.fetch(ctx, fmt.Sprintf("products/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	product := c.transformer.TransformProduct(&raw)
	return &product, nil
}

// GetProductBySlug returns nil, nil when no product has the slug.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var raw []Product
	if err := c.fetch(ctx, "products", Params{{Key: "slug", Value: slug}}, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	product := c.transformer.TransformProduct(&raw[0])
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context, filters CategoryFilters) ([]models.Category, error) {
	var raw []Category
	if err := c.fetch(ctx, "products/categories", filters.Params(), &raw); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(raw))
	for i := range raw {
		categories = append(categories, c.transformer.TransformCategory(&raw[i]))
	}
	return categories, nil
}

// ListProductReviews returns the approved reviews of a product. Reviews are
// best-effort: any failure is logged and yields an empty list.
func (c *Client) ListProductReviews(ctx context.Context, productID int) []models.Review {
	params := Params{
		{Key: "product", Value: strconv.Itoa(productID)},
		{Key: "status", Value: "approved"},
	}

	var raw []Review
	if err := c.fetch(ctx, "products/reviews", params, &raw); err != nil {
		// fetch already logged the cause.
		c.logger.Warn("Returning no reviews for product %d", productID)
		return []models.Review{}
	}

	reviews := make([]models.Review, 0, len(raw))
	for i := range raw {
		reviews = append(reviews, c.transformer.TransformReview(&raw[i]))
	}
	return reviews
}

func limitOrDefault(limit, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

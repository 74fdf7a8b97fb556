package woocommerce

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/logger"
)

const productJSON = `{
	"id": 15,
	"name": "Zapatilla Runner",
	"slug": "zapatilla-runner",
	"permalink": "https://shop.test/producto/zapatilla-runner/",
	"price": "49.90",
	"regular_price": "59.90",
	"sale_price": "49.90",
	"on_sale": true,
	"featured": true,
	"total_sales": 31,
	"stock_status": "instock",
	"stock_quantity": 4,
	"dimensions": {"length": "30", "width": "12", "height": "10"},
	"categories": [{"id": 3, "name": "Shoes", "slug": "shoes"}],
	"tags": [{"id": 1, "name": "running", "slug": "running"}],
	"images": [{"id": 100, "src": "https://cdn.test/runner.jpg", "alt": "Runner"}],
	"attributes": [{"id": 1, "name": "Talla", "options": ["40", "41"]}],
	"variations": [16, 17],
	"related_ids": [20],
	"average_rating": "4.50",
	"rating_count": 2,
	"reviews_allowed": true
}`

func TestListProducts_DefaultParams(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[`+productJSON+`]`))
	client := newTestClient(b.URL, "", "")

	products, err := client.ListProducts(context.Background(), ProductFilters{})
	require.NoError(t, err)
	require.Len(t, products, 1)

	req := b.lastRequest(t)
	assert.Equal(t, "/products", req.URL.Path)
	assert.Equal(t, "per_page=10&status=publish", req.URL.RawQuery)

	p := products[0]
	assert.Equal(t, 15, p.ID)
	assert.Equal(t, "Zapatilla Runner", p.Name)
	assert.Equal(t, "49.90", p.Price)
	assert.Equal(t, "59.90", p.RegularPrice)
	assert.Equal(t, "Shoes", p.Category)
	assert.Equal(t, []string{"running"}, p.Tags)
	assert.Equal(t, []string{"https://cdn.test/runner.jpg"}, p.Image)
	assert.Equal(t, []int{16, 17}, p.Variations)
	require.NotNil(t, p.StockQuantity)
	assert.Equal(t, 4, *p.StockQuantity)
	assert.Len(t, p.Attributes, 1)
}

func TestListProducts_Overrides(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[]`))
	client := newTestClient(b.URL, "", "")

	featured := false
	_, err := client.ListProducts(context.Background(), ProductFilters{
		PerPage:  24,
		Page:     3,
		Featured: &featured,
		OrderBy:  "price",
		Order:    OrderAsc,
		Category: "15",
		Status:   "draft",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"per_page=24&status=draft&page=3&featured=false&orderby=price&order=asc&category=15",
		b.lastRequest(t).URL.RawQuery)
}

func TestProductFilters_ZeroValuesNotSent(t *testing.T) {
	assert.Equal(t, "per_page=10&status=publish", ProductFilters{}.Params().Encode())
	assert.Equal(t, "per_page=10&status=publish",
		ProductFilters{Status: "", Category: "", ProductCat: "", OrderBy: ""}.Params().Encode())

	// Hand-built params keep explicit empty values.
	params := ProductFilters{}.Params()
	params.Set("status", "")
	params.Add("category", "")
	assert.Equal(t, "per_page=10&status=&category=", params.Encode())
}

func TestFeaturedProducts_Params(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[]`))
	client := newTestClient(b.URL, "", "")

	products, err := client.FeaturedProducts(context.Background(), 6)
	require.NoError(t, err)
	assert.NotNil(t, products)

	q := b.lastRequest(t).URL.Query()
	assert.Equal(t, "true", q.Get("featured"))
	assert.Equal(t, "6", q.Get("per_page"))
	assert.Equal(t, "date", q.Get("orderby"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Equal(t, "publish", q.Get("status"))
}

func TestPresetLimits(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[]`))
	client := newTestClient(b.URL, "", "")
	ctx := context.Background()

	_, err := client.FeaturedProducts(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "4", b.lastRequest(t).URL.Query().Get("per_page"))

	_, err = client.BestSellingProducts(ctx, 0)
	require.NoError(t, err)
	q := b.lastRequest(t).URL.Query()
	assert.Equal(t, "4", q.Get("per_page"))
	assert.Equal(t, "popularity", q.Get("orderby"))
	assert.Equal(t, "desc", q.Get("order"))
	assert.Empty(t, q.Get("featured"))

	_, err = client.NewProducts(ctx, 0)
	require.NoError(t, err)
	q = b.lastRequest(t).URL.Query()
	assert.Equal(t, "8", q.Get("per_page"))
	assert.Equal(t, "date", q.Get("orderby"))

	_, err = client.NewProducts(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, "12", b.lastRequest(t).URL.Query().Get("per_page"))
}

func TestGetProduct(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, productJSON))
	client := newTestClient(b.URL, "", "")

	product, err := client.GetProduct(context.Background(), 15)
	require.NoError(t, err)
	assert.Equal(t, "zapatilla-runner", product.Slug)
	assert.Equal(t, "/products/15", b.lastRequest(t).URL.Path)
	assert.Empty(t, b.lastRequest(t).URL.RawQuery)
}

func TestGetProductBySlug(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		b := newBackend(t, jsonHandler(http.StatusOK, `[]`))
		client := newTestClient(b.URL, "", "")

		product, err := client.GetProductBySlug(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, product)
		assert.Equal(t, "slug=missing", b.lastRequest(t).URL.RawQuery)
	})

	t.Run("first match", func(t *testing.T) {
		b := newBackend(t, jsonHandler(http.StatusOK, `[`+productJSON+`, {"id": 99, "name": "Otro"}]`))
		client := newTestClient(b.URL, "", "")

		product, err := client.GetProductBySlug(context.Background(), "zapatilla-runner")
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 15, product.ID)
	})

	t.Run("backend error", func(t *testing.T) {
		b := newBackend(t, jsonHandler(http.StatusInternalServerError, `{}`))
		client := newTestClient(b.URL, "", "")

		_, err := client.GetProductBySlug(context.Background(), "x")
		assert.Error(t, err)
	})
}

func TestListCategories(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[
		{"id": 3, "name": "Shoes", "slug": "shoes", "description": "", "image": {"src": "http://x/y.jpg"}, "count": 12},
		{"id": 4, "name": "Hats", "slug": "hats", "description": "Caps", "image": null, "count": 2}
	]`))
	client := newTestClient(b.URL, "", "")

	categories, err := client.ListCategories(context.Background(), CategoryFilters{})
	require.NoError(t, err)
	require.Len(t, categories, 2)

	req := b.lastRequest(t)
	assert.Equal(t, "/products/categories", req.URL.Path)
	assert.Equal(t, "per_page=10&hide_empty=true", req.URL.RawQuery)

	require.NotNil(t, categories[0].Image)
	assert.Equal(t, "http://x/y.jpg", *categories[0].Image)
	assert.Equal(t, 12, categories[0].Count)
	assert.Nil(t, categories[1].Image)
}

func TestListCategories_Filters(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[]`))
	client := newTestClient(b.URL, "", "")

	hideEmpty := false
	parent := 0
	_, err := client.ListCategories(context.Background(), CategoryFilters{PerPage: 50, HideEmpty: &hideEmpty, Parent: &parent})
	require.NoError(t, err)
	assert.Equal(t, "per_page=50&hide_empty=false&parent=0", b.lastRequest(t).URL.RawQuery)
}

func TestListProductReviews(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[{
		"id": 5,
		"date_created": "2024-03-01T10:00:00",
		"product_id": 15,
		"status": "approved",
		"reviewer": "Ana",
		"reviewer_email": "ana@example.com",
		"review": "<p>Muy cómodas</p>",
		"rating": 5,
		"verified": true,
		"reviewer_avatar_urls": {"24": "a24", "48": "a48", "96": "a96"}
	}]`))
	client := newTestClient(b.URL, "", "")

	reviews := client.ListProductReviews(context.Background(), 15)
	require.Len(t, reviews, 1)
	assert.Equal(t, "a48", reviews[0].ReviewerAvatar)
	assert.Equal(t, "2024-03-01T10:00:00", reviews[0].DateCreated)
	assert.True(t, reviews[0].Verified)

	req := b.lastRequest(t)
	assert.Equal(t, "/products/reviews", req.URL.Path)
	assert.Equal(t, "product=15&status=approved", req.URL.RawQuery)
}

func TestListProductReviews_FailureYieldsEmpty(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"http error":   jsonHandler(http.StatusInternalServerError, `{}`),
		"decode error": jsonHandler(http.StatusOK, `not json`),
	} {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t, handler)
			client := newTestClient(b.URL, "", "")

			reviews := client.ListProductReviews(context.Background(), 15)
			assert.NotNil(t, reviews)
			assert.Empty(t, reviews)
		})
	}

	client := newTestClient("", "", "")
	assert.Empty(t, client.ListProductReviews(context.Background(), 15))
}

func TestListProductReviews_FailureLoggedOnce(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusInternalServerError, `{}`))
	var buf bytes.Buffer
	client := NewClient(b.URL, "", "", logger.NewWithWriter("info", &buf))

	client.ListProductReviews(context.Background(), 15)

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "[ERROR]"), out)
	assert.Contains(t, out, "[WARN] Returning no reviews for product 15")
}

func TestClient_ConcurrentUse(t *testing.T) {
	b := newBackend(t, jsonHandler(http.StatusOK, `[`+productJSON+`]`))
	client := newTestClient(b.URL, "key", "secret")

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := client.ListProducts(context.Background(), ProductFilters{Page: 1})
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}

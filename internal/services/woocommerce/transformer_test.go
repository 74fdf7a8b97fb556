package woocommerce

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestTransformProduct_NameAndSlugDefaults(t *testing.T) {
	product := NewTransformer().TransformProduct(&Product{ID: 42})

	assert.Equal(t, "Producto 42", product.Name)
	assert.Equal(t, "producto-42", product.Slug)
}

func TestTransformProduct_KeepsNameAndSlug(t *testing.T) {
	product := NewTransformer().TransformProduct(&Product{ID: 7, Name: "Zapatilla", Slug: "zapatilla"})

	assert.Equal(t, "Zapatilla", product.Name)
	assert.Equal(t, "zapatilla", product.Slug)
}

func TestTransformProduct_PlaceholderImage(t *testing.T) {
	tr := NewTransformer()

	for _, raw := range []*Product{
		{ID: 1, Name: "Mochila"},
		{ID: 1, Name: "Mochila", Images: []Image{}},
		{ID: 1, Name: "Mochila", Images: []Image{{Src: ""}}},
	} {
		product := tr.TransformProduct(raw)
		assert.Equal(t, []string{"https://placehold.co/300"}, product.Image)
		assert.Equal(t, []string{"Mochila"}, product.ImageAlt)
	}

	unnamed := tr.TransformProduct(&Product{ID: 2})
	assert.Equal(t, []string{PlaceholderImage}, unnamed.Image)
	assert.Equal(t, []string{"Producto"}, unnamed.ImageAlt)
}

func TestTransformProduct_Images(t *testing.T) {
	product := NewTransformer().TransformProduct(&Product{
		ID:   3,
		Name: "Camiseta",
		Images: []Image{
			{Src: "https://cdn.test/front.jpg", Alt: "Frente"},
			{Src: ""},
			{Src: "https://cdn.test/back.jpg"},
		},
	})

	assert.Equal(t, []string{"https://cdn.test/front.jpg", "https://cdn.test/back.jpg"}, product.Image)
	assert.Equal(t, []string{"Frente", "Camiseta"}, product.ImageAlt)
}

func TestTransformProduct_PriceFallbacks(t *testing.T) {
	tr := NewTransformer()

	onlyRegular := tr.TransformProduct(&Product{ID: 1, RegularPrice: "19.90"})
	assert.Equal(t, "19.90", onlyRegular.Price)
	assert.Equal(t, "19.90", onlyRegular.RegularPrice)

	onlyPrice := tr.TransformProduct(&Product{ID: 1, Price: "15.00"})
	assert.Equal(t, "15.00", onlyPrice.Price)
	assert.Equal(t, "15.00", onlyPrice.RegularPrice)

	none := tr.TransformProduct(&Product{ID: 1})
	assert.Equal(t, "0", none.Price)
	assert.Equal(t, "0", none.RegularPrice)
	assert.Nil(t, none.SalePrice)

	sale := tr.TransformProduct(&Product{ID: 1, Price: "8", RegularPrice: "10", SalePrice: "8", OnSale: true})
	require.NotNil(t, sale.SalePrice)
	assert.Equal(t, "8", *sale.SalePrice)
	assert.True(t, sale.OnSale)
}

func TestTransformProduct_CategoryAndTags(t *testing.T) {
	tr := NewTransformer()

	product := tr.TransformProduct(&Product{
		ID:         1,
		Categories: []Term{{ID: 3, Name: "Shoes"}, {ID: 4, Name: "Sale"}},
		Tags:       []Term{{Name: "red"}, {Name: "summer"}},
	})
	assert.Equal(t, "Shoes", product.Category)
	assert.Equal(t, []string{"red", "summer"}, product.Tags)

	bare := tr.TransformProduct(&Product{ID: 1})
	assert.Equal(t, "Sin categoría", bare.Category)
	assert.NotNil(t, bare.Tags)
	assert.Empty(t, bare.Tags)
}

func TestTransformProduct_ListsNeverNull(t *testing.T) {
	product := NewTransformer().TransformProduct(&Product{ID: 1})

	data, err := json.Marshal(product)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, field := range []string{"image", "imageAlt", "tags", "attributes", "variations", "relatedIds", "upsellIds", "crossSellIds"} {
		assert.NotNil(t, decoded[field], "field %s", field)
	}
	assert.NotContains(t, decoded, "salePrice")
	assert.Contains(t, decoded, "stockQuantity")
}

func TestTransformCategory(t *testing.T) {
	var raw Category
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Shoes","slug":"shoes","description":"","image":{"src":"http://x/y.jpg"},"count":12}`), &raw))

	category := NewTransformer().TransformCategory(&raw)

	image := "http://x/y.jpg"
	assert.Equal(t, models.Category{
		ID:          3,
		Name:        "Shoes",
		Slug:        "shoes",
		Description: "",
		Image:       &image,
		Count:       12,
	}, category)
}

func TestTransformCategory_NoImage(t *testing.T) {
	tr := NewTransformer()

	assert.Nil(t, tr.TransformCategory(&Category{ID: 1}).Image)
	assert.Nil(t, tr.TransformCategory(&Category{ID: 1, Image: &CatImage{}}).Image)
}

func TestTransformReview_Avatar(t *testing.T) {
	tr := NewTransformer()

	review := tr.TransformReview(&Review{
		ID:        9,
		ProductID: 3,
		Rating:    5,
		ReviewerAvatarURLs: map[string]string{
			"24": "https://gravatar.test/24",
			"48": "https://gravatar.test/48",
			"96": "https://gravatar.test/96",
		},
	})
	assert.Equal(t, "https://gravatar.test/48", review.ReviewerAvatar)
	assert.Equal(t, 3, review.ProductID)

	fallback := tr.TransformReview(&Review{ID: 9, ReviewerAvatarURLs: map[string]string{"96": "https://gravatar.test/96"}})
	assert.Equal(t, "https://gravatar.test/96", fallback.ReviewerAvatar)

	none := tr.TransformReview(&Review{ID: 9})
	assert.Empty(t, none.ReviewerAvatar)
}

func TestDecodeProduct(t *testing.T) {
	product, err := DecodeProduct([]byte(`{"id": 12, "name": "Gorra", "price": "9.99", "stock_quantity": null}`))
	require.NoError(t, err)
	assert.Equal(t, 12, product.ID)
	assert.Equal(t, "Gorra", product.Name)
	assert.Equal(t, "producto-12", product.Slug)
	assert.Equal(t, "9.99", product.Price)
	assert.Nil(t, product.StockQuantity)

	_, err = DecodeProduct([]byte(`{"id": "twelve"}`))
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))

	_, err = DecodeProduct([]byte(`{"name": "sin id"}`))
	assert.True(t, errors.As(err, &decodeErr))
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/logger"
	"storefront/internal/models"
	"storefront/internal/services/woocommerce"
)

func TestValidateProduct_TransformedProductsAreValid(t *testing.T) {
	v := New(logger.Discard())
	tr := woocommerce.NewTransformer()

	for _, raw := range []*woocommerce.Product{
		{ID: 1},
		{ID: 2, Name: "Gorra", Price: "10", Images: []woocommerce.Image{{Src: "https://cdn.test/a.jpg"}}},
		{ID: 3, Images: []woocommerce.Image{{Src: ""}, {Src: "https://cdn.test/b.jpg", Alt: "B"}}},
	} {
		product := tr.TransformProduct(raw)
		assert.NoError(t, v.ValidateProduct(&product), "product %d", raw.ID)
	}
}

func TestValidateProduct_Invalid(t *testing.T) {
	v := New(logger.Discard())

	err := v.ValidateProduct(&models.Product{
		ID:       5,
		Name:     "Gorra",
		Slug:     "gorra",
		Price:    "10",
		Image:    []string{"https://cdn.test/a.jpg", "https://cdn.test/b.jpg"},
		ImageAlt: []string{"A"},
		Category: "Hats",
		Tags:     []string{},
	})
	assert.ErrorContains(t, err, "RegularPrice(required)")
	assert.ErrorContains(t, err, "ImageAlt(eqfield)")

	assert.Error(t, v.ValidateProduct(nil))
	assert.Error(t, v.ValidateProduct(&models.Product{}))
}

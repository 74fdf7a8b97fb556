package woocommerce

import (
	"bytes"
	"encoding/json"
	"fmt"

	"storefront/internal/models"
)

const (
	PlaceholderImage = "https://placehold.co/300"
	DefaultCategory  = "Sin categoría"
	defaultImageAlt  = "Producto"
	defaultPrice     = "0"
)

// Transformer maps raw WooCommerce records to storefront models. Missing
// optional fields are filled with defaults, never reported as errors.
type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

// TransformProduct converts a WooCommerce product to the storefront shape.
func (t *Transformer) TransformProduct(p *Product) models.Product {
	images, alts := t.transformImages(p)

	var salePrice *string
	if p.SalePrice != "" {
		sale := p.SalePrice
		salePrice = &sale
	}

	category := DefaultCategory
	if len(p.Categories) > 0 && p.Categories[0].Name != "" {
		category = p.Categories[0].Name
	}

	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tags = append(tags, tag.Name)
	}

	attributes := p.Attributes
	if attributes == nil {
		attributes = []json.RawMessage{}
	}

	return models.Product{
		ID:               p.ID,
		Name:             firstNonEmpty(p.Name, fmt.Sprintf("Producto %d", p.ID)),
		Slug:             firstNonEmpty(p.Slug, fmt.Sprintf("producto-%d", p.ID)),
		Price:            firstNonEmpty(p.Price, p.RegularPrice, defaultPrice),
		RegularPrice:     firstNonEmpty(p.RegularPrice, p.Price, defaultPrice),
		SalePrice:        salePrice,
		OnSale:           p.OnSale,
		Image:            images,
		ImageAlt:         alts,
		Category:         category,
		Tags:             tags,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Featured:         p.Featured,
		TotalSales:       p.TotalSales,
		StockStatus:      p.StockStatus,
		StockQuantity:    p.StockQuantity,
		Weight:           p.Weight,
		Dimensions: models.Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		ShippingClass:   p.ShippingClass,
		ShippingClassID: p.ShippingClassID,
		Attributes:      attributes,
		Variations:      intsOrEmpty(p.Variations),
		RelatedIDs:      intsOrEmpty(p.RelatedIDs),
		UpsellIDs:       intsOrEmpty(p.UpsellIDs),
		CrossSellIDs:    intsOrEmpty(p.CrossSellIDs),
		ReviewsAllowed:  p.ReviewsAllowed,
		AverageRating:   p.AverageRating,
		RatingCount:     p.RatingCount,
		Permalink:       p.Permalink,
	}
}

// transformImages keeps image URLs and alt texts index-aligned. Images
// without a src are dropped together with their alt.
func (t *Transformer) transformImages(p *Product) ([]string, []string) {
	fallbackAlt := firstNonEmpty(p.Name, defaultImageAlt)

	images := make([]string, 0, len(p.Images))
	alts := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img.Src == "" {
			continue
		}
		images = append(images, img.Src)
		alts = append(alts, firstNonEmpty(img.Alt, fallbackAlt))
	}

	if len(images) == 0 {
		return []string{PlaceholderImage}, []string{fallbackAlt}
	}
	return images, alts
}

func (t *Transformer) TransformProducts(products []Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for i := range products {
		out = append(out, t.TransformProduct(&products[i]))
	}
	return out
}

// TransformCategory flattens the nested category image to its URL.
func (t *Transformer) TransformCategory(c *Category) models.Category {
	var image *string
	if c.Image != nil && c.Image.Src != "" {
		src := c.Image.Src
		image = &src
	}

	return models.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       image,
		Count:       c.Count,
	}
}

// TransformReview picks the 48px avatar, falling back to 96px.
func (t *Transformer) TransformReview(r *Review) models.Review {
	return models.Review{
		ID:             r.ID,
		DateCreated:    r.DateCreated,
		ProductID:      r.ProductID,
		Status:         r.Status,
		Reviewer:       r.Reviewer,
		ReviewerEmail:  r.ReviewerEmail,
		Review:         r.Review,
		Rating:         r.Rating,
		Verified:       r.Verified,
		ReviewerAvatar: firstNonEmpty(r.ReviewerAvatarURLs["48"], r.ReviewerAvatarURLs["96"]),
	}
}

// DecodeProduct decodes a single raw product (e.g. a webhook body),
// validates it and returns the storefront shape.
func DecodeProduct(payload []byte) (*models.Product, error) {
	var raw Product
	if err := decode("product payload", bytes.NewReader(payload), &raw); err != nil {
		return nil, err
	}
	product := NewTransformer().TransformProduct(&raw)
	return &product, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intsOrEmpty(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}

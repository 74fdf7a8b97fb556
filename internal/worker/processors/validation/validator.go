package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"storefront/internal/logger"
	"storefront/internal/models"
)

type Validator struct {
	logger   *logger.Logger
	validate *validator.Validate
}

func New(logger *logger.Logger) *Validator {
	return &Validator{
		logger:   logger,
		validate: validator.New(),
	}
}

// ValidateProduct checks a transformed product before it is published
// downstream: required fields set, at least one image, one alt per image.
func (v *Validator) ValidateProduct(product *models.Product) error {
	if product == nil {
		return errors.New("product is nil")
	}

	err := v.validate.Struct(product)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate product %d: %w", product.ID, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	v.logger.Debug("Product %d failed validation: %s", product.ID, strings.Join(fields, ", "))

	return fmt.Errorf("product %d is invalid: %s", product.ID, strings.Join(fields, ", "))
}

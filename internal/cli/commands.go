package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"storefront/internal/models"
	wooapi "storefront/internal/services/woocommerce"
)

func newProbeCommand(catalog Catalog, withTimeout contextFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the store API is reachable with the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			result := catalog.TestConnection(ctx)
			if err := printJSON(cmd, result); err != nil {
				return err
			}
			if !result.Success {
				return errProbeFailed
			}
			return nil
		},
	}
}

func newProductsCommand(catalog Catalog, withTimeout contextFunc) *cobra.Command {
	var (
		filters  wooapi.ProductFilters
		featured bool
		paged    bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("featured") {
				filters.Featured = &featured
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			if paged {
				page, err := catalog.ListProductsPaged(ctx, filters)
				if err != nil {
					return fmt.Errorf("failed to list products: %w", err)
				}
				return printJSON(cmd, page)
			}

			products, err := catalog.ListProducts(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}
			return printJSON(cmd, products)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&filters.PerPage, "per-page", 0, "products per page (store default 10)")
	flags.IntVar(&filters.Page, "page", 0, "page number")
	flags.BoolVar(&featured, "featured", false, "only featured (or, with =false, non-featured) products")
	flags.StringVar(&filters.OrderBy, "orderby", "", "sort field, e.g. date, price, popularity")
	flags.StringVar(&filters.Order, "order", "", "asc or desc")
	flags.StringVar(&filters.Category, "category", "", "category id")
	flags.StringVar(&filters.ProductCat, "product-cat", "", "category slug")
	flags.StringVar(&filters.Status, "status", "", "product status (default publish)")
	flags.BoolVar(&paged, "paged", false, "include total pages and items")

	return cmd
}

func newCollectionCommand(
	name, short string,
	defaultLimit int,
	fetch func(context.Context, int) ([]models.Product, error),
	withTimeout contextFunc,
) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			products, err := fetch(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list %s products: %w", name, err)
			}
			return printJSON(cmd, products)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "number of products")

	return cmd
}

func newProductCommand(catalog Catalog, withTimeout contextFunc) *cobra.Command {
	var slug string

	cmd := &cobra.Command{
		Use:   "product [id]",
		Short: "Show a single product by id or slug",
		Args: func(cmd *cobra.Command, args []string) error {
			if slug != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			if slug != "" {
				product, err := catalog.GetProductBySlug(ctx, slug)
				if err != nil {
					return fmt.Errorf("failed to fetch product %q: %w", slug, err)
				}
				if product == nil {
					return fmt.Errorf("product %q not found", slug)
				}
				return printJSON(cmd, product)
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := catalog.GetProduct(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch product %d: %w", id, err)
			}
			return printJSON(cmd, product)
		},
	}
	cmd.Flags().StringVar(&slug, "slug", "", "look the product up by slug instead of id")

	return cmd
}

func newCategoriesCommand(catalog Catalog, withTimeout contextFunc) *cobra.Command {
	var (
		perPage   int
		hideEmpty bool
		parent    int
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := wooapi.CategoryFilters{PerPage: perPage}
			if cmd.Flags().Changed("hide-empty") {
				filters.HideEmpty = &hideEmpty
			}
			if cmd.Flags().Changed("parent") {
				filters.Parent = &parent
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			categories, err := catalog.ListCategories(ctx, filters)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			return printJSON(cmd, categories)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&perPage, "per-page", 0, "categories per page (store default 10)")
	flags.BoolVar(&hideEmpty, "hide-empty", true, "skip categories without products")
	flags.IntVar(&parent, "parent", 0, "only children of this category id")

	return cmd
}

func newReviewsCommand(catalog Catalog, withTimeout contextFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <product-id>",
		Short: "List approved reviews for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()

			return printJSON(cmd, catalog.ListProductReviews(ctx, id))
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

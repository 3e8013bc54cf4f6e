package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronolux/storefront/internal/core/domain"
	"github.com/chronolux/storefront/internal/core/service"
)

func TestCatalog(t *testing.T) {
	catalog := service.NewCatalog()

	t.Run("ProductsListsFullCatalog", func(t *testing.T) {
		products := catalog.Products()

		require.Len(t, products, 9)
		assert.Equal(t, "Submariner Date", products[0].Name)
		assert.Equal(t, "Rolex", products[0].Brand)
		assert.Equal(t, float64(14000), products[0].Price)
	})

	t.Run("FeaturedIsFirstThree", func(t *testing.T) {
		featured := catalog.Featured()

		require.Len(t, featured, 3)
		assert.Equal(t, catalog.Products()[:3], featured)
	})

	t.Run("ByIDReturnsDetails", func(t *testing.T) {
		details, err := catalog.ByID("8")

		require.NoError(t, err)
		assert.Equal(t, "Speedmaster Moonwatch", details.Name)
		assert.Len(t, details.Images, 4)
		assert.Equal(t, details.Image, details.Images[0])
		assert.Equal(t, "41mm", details.Specifications["caseDiameter"])
		assert.Len(t, details.Features, 6)
	})

	t.Run("ByIDUnknownIsNotFound", func(t *testing.T) {
		_, err := catalog.ByID("404")

		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("RelatedExcludesGivenProduct", func(t *testing.T) {
		related := catalog.Related("2")

		require.Len(t, related, 4)
		for _, p := range related {
			assert.NotEqual(t, "2", p.ProductID)
		}
		assert.Equal(t, "1", related[0].ProductID)
	})

	t.Run("ReviewsAreFixed", func(t *testing.T) {
		reviews := catalog.Reviews("1")

		require.Len(t, reviews, 3)
		assert.Equal(t, "James Wilson", reviews[0].Name)
		assert.Equal(t, 5, reviews[0].Rating)
		assert.Equal(t, reviews, catalog.Reviews("9"))
	})
}

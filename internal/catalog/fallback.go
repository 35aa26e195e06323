package catalog

import "github.com/aurumworks/showcase/internal/domain"

// FallbackProducts returns the built-in catalog used when the remote source
// is unreachable, so the showcase is never empty. Prices are stamped by the
// store, not here.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			Name:            "Engagement Ring 1",
			PopularityScore: 0.85,
			Weight:          2.1,
			Images: domain.VariantImages{
				{Color: "yellow", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG085-100P-Y.jpg?v=1696588368"},
				{Color: "rose", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG085-100P-R.jpg?v=1696588406"},
				{Color: "white", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG085-100P-W.jpg?v=1696588402"},
			},
		},
		{
			Name:            "Engagement Ring 2",
			PopularityScore: 0.51,
			Weight:          3.4,
			Images: domain.VariantImages{
				{Color: "yellow", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG012-Y.jpg?v=1707727068"},
				{Color: "rose", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG012-R.jpg?v=1707727068"},
				{Color: "white", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG012-W.jpg?v=1707727068"},
			},
		},
		{
			Name:            "Engagement Ring 3",
			PopularityScore: 0.92,
			Weight:          3.8,
			Images: domain.VariantImages{
				{Color: "yellow", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG020-100P-Y.jpg?v=1683534032"},
				{Color: "rose", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG020-100P-R.jpg?v=1683534032"},
				{Color: "white", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG020-100P-W.jpg?v=1683534032"},
			},
		},
		{
			Name:            "Engagement Ring 4",
			PopularityScore: 0.88,
			Weight:          4.5,
			Images: domain.VariantImages{
				{Color: "yellow", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG022-100P-Y.jpg?v=1683532153"},
				{Color: "rose", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG022-100P-R.jpg?v=1683532153"},
				{Color: "white", URL: "https://cdn.shopify.com/s/files/1/0484/1429/4167/files/EG022-100P-W.jpg?v=1683532153"},
			},
		},
	}
}

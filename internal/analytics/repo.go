package analytics

import (
	"context"

	"gorm.io/gorm"
)

// Repository runs read-only aggregations over the comparison tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an analytics repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PopularRoutes groups ride comparisons by route, busiest first.
func (r *Repository) PopularRoutes(ctx context.Context, limit int) ([]PopularRoute, error) {
	var routes []PopularRoute
	err := r.db.WithContext(ctx).Raw(`
SELECT rc.pickup_location,
       rc.drop_location,
       COUNT(*) AS comparison_count,
       AVG(rc.distance_km) AS avg_distance_km,
       (SELECT r2.best_price_provider
          FROM ride_comparisons r2
         WHERE r2.pickup_location = rc.pickup_location
           AND r2.drop_location = rc.drop_location
         GROUP BY r2.best_price_provider
         ORDER BY COUNT(*) DESC
         LIMIT 1) AS most_chosen_provider
  FROM ride_comparisons rc
 GROUP BY rc.pickup_location, rc.drop_location
 ORDER BY comparison_count DESC
 LIMIT ?`, limit).
		Scan(&routes).
		Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// PopularProducts groups grocery comparisons by product name. The savings
// spread is computed from the stored jsonb quote list, so this query needs
// Postgres.
func (r *Repository) PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error) {
	var products []PopularProduct
	err := r.db.WithContext(ctx).Raw(`
SELECT gc.product_name,
       COUNT(*) AS comparison_count,
       AVG((gc.providers->0->>'price')::numeric -
           (SELECT MIN((p->>'price')::numeric) FROM jsonb_array_elements(gc.providers) p)) AS avg_savings,
       (SELECT g2.best_price_provider
          FROM grocery_comparisons g2
         WHERE g2.product_name = gc.product_name
         GROUP BY g2.best_price_provider
         ORDER BY COUNT(*) DESC
         LIMIT 1) AS most_chosen_provider
  FROM grocery_comparisons gc
 GROUP BY gc.product_name
 ORDER BY comparison_count DESC
 LIMIT ?`, limit).
		Scan(&products).
		Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

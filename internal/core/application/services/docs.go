// Package services holds the application services that own all mutable shared
// state: the building catalog, the ingredient/recipe catalog and the live order
// registry with its lifecycle indexes.
//
// Every service is safe for concurrent use. Catalog services guard their state
// with one reader-writer lock; OrderService serializes work per order through the
// order's own lock and never holds a catalog lock while waiting for an order lock.
//
// Example:
//
//	buildings := services.NewBuildingService()
//	recipes := services.NewRecipeService()
//	orders := services.NewOrderService(buildings, recipes, orderrepo.NewRegistry(), orderMetrics, logger)
//
//	_ = buildings.AddBuilding(1, kernel.MustIntegerRange(101, 199))
//	orderID, err := orders.CreateOrder(1, 101)
package services

package kernel

// Catalog and order limits.
const (
	MaxNumberOfIngredients = 10
	MaxOrderSize           = 50
	MaxNameLength          = 100
	MaxBuildingNumber      = 1000
	MaxRoomNumber          = 10000
)

package contextkeys

// Custom key type to avoid context collisions.
type contextKey string

// DBContextKey is where middleware stores the *gorm.DB handle (the pool, or a
// transaction in tests) for the current request.
const DBContextKey = contextKey("db")

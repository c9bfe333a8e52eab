package engine

// Config controls evaluation behavior.
type Config struct {
	// MaxConcurrentIngredients limits parallel ingredient evaluation (0 = no limit)
	MaxConcurrentIngredients int
	// Parallel enables parallel evaluation across ingredients
	Parallel bool
}

// DefaultConfig returns sensible defaults for parallel evaluation.
func DefaultConfig() Config {
	return Config{
		MaxConcurrentIngredients: 10,
		Parallel:                 true,
	}
}

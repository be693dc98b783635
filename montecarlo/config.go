package montecarlo

// Config holds path-generation tuning parameters.
type Config struct {
	// ChunkRows is the number of matrix rows generated from a single seeded
	// random source. Seeding is per chunk, not per worker, so the generated
	// matrix does not depend on Workers.
	ChunkRows int

	// Workers is the number of goroutines generating chunks concurrently.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	ChunkRows: 1024,
	Workers:   0,
}

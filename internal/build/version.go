package build

// Set at link time with -ldflags "-X github.com/wagner1975/eezycollectionz/internal/build.ShortVersion=..."
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)

package version

// Build information, overridden through -ldflags at release time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

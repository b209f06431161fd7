package metrics

// Config holds configuration for the prometheus endpoint.
type Config struct {
	// Enabled exposes the metrics endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the HTTP path of the endpoint.
	Path string `mapstructure:"path" default:"/metrics"`
}

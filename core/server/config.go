package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB limits the size of a single uploaded invoice file.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"16"`
}

// defaultMaxUploadMB is applied when the configured limit is missing or nonsensical.
const defaultMaxUploadMB = 16

// BodyLimit returns the request body size limit in bytes.
// Two files plus multipart framing have to fit, hence the doubling.
func (c Config) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = defaultMaxUploadMB
	}
	return 2 * mb * 1024 * 1024
}

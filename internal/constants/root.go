package constants

import "time"

// Status represents the fetch lifecycle state of the forecast view
type Status int

const (
	AppName = "uvcast"
	Version = "v0.1.0"

	// DefaultBaseURL is the forecast endpoint used when none is configured.
	// Requests are issued as GET {base}/{postal code}.
	DefaultBaseURL = "http://localhost:8080/uv"

	// DefaultAPIDocsURL is the external link shown in the TUI footer
	DefaultAPIDocsURL = "https://www.epa.gov/sunsafety/uv-index-1"

	// DefaultLogDir holds logs/uvcast.log
	DefaultLogDir = "~/.config/uvcast"

	// AppOrigin is the origin used to resolve in-app links and to render the address bar
	AppOrigin = "uvcast://app"

	// RoutePrefix is the only routed path shape: /zipcode/{code}
	RoutePrefix = "/zipcode/"
	HomePath    = "/"

	// Rendered texts
	LoadingText = "Loading..."
	ErrorText   = "Error"
	TimeHeader  = "Time"
	UVHeader    = "UV"

	// Rate limiting defaults (0 disables)
	DefaultRateLimit = 0.0
	DefaultBurst     = 1

	// DefaultTimeout of 0 means outbound requests never time out
	DefaultTimeout time.Duration = 0

	// Env var names
	EnvAPIURL    = "UVCAST_API_URL"
	EnvTimeout   = "UVCAST_TIMEOUT"
	EnvRateLimit = "UVCAST_RATE_LIMIT"
)

// Forecast lifecycle states. The zero value is StatusIdle.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusFailure
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusFailure:
		return "failure"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

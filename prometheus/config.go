package prometheus

const (
	// Endpoint is the path the metrics are served on
	Endpoint = "/metrics"

	// ProfilingIndexEndpoint is the pprof index path
	ProfilingIndexEndpoint = "/debug/pprof/"
	// ProfileEndpoint is the pprof CPU profile path
	ProfileEndpoint = "/debug/pprof/profile"
	// ProfilingCmdEndpoint is the pprof cmdline path
	ProfilingCmdEndpoint = "/debug/pprof/cmdline"
	// ProfilingSymbolEndpoint is the pprof symbol path
	ProfilingSymbolEndpoint = "/debug/pprof/symbol"
	// ProfilingTraceEndpoint is the pprof trace path
	ProfilingTraceEndpoint = "/debug/pprof/trace"
)

// Config represents the configuration of the metrics
type Config struct {
	// Enabled is the flag to enable/disable the metrics server
	Enabled bool `mapstructure:"Enabled"`
	// Host is the address to bind the metrics server
	Host string `mapstructure:"Host"`
	// Port is the port to bind the metrics server
	Port int `mapstructure:"Port"`
}

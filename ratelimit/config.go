package ratelimit

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/agglayer/aggkit-prover/config/types"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

const unlimitedStr = "unlimited"

// DefaultSendTxInterval is the window of the default sendTx limit (one call per window).
var DefaultSendTxInterval = time.Hour

// TimeRateLimit allows MaxPerInterval events in every TimeInterval, unless Unlimited is set.
//
// In TOML it is either the string "unlimited" or a table:
//
//	[RateLimiting.SendTx]
//	MaxPerInterval = 4
//	TimeInterval = "1h 20min"
//
// Kebab-case keys (max-per-interval, time-interval) are accepted as well.
type TimeRateLimit struct {
	Unlimited      bool           `mapstructure:"Unlimited"`
	MaxPerInterval uint32         `mapstructure:"MaxPerInterval"`
	TimeInterval   types.Duration `mapstructure:"TimeInterval"`
}

// Unlimited returns a limit that never rejects.
func Unlimited() TimeRateLimit {
	return TimeRateLimit{Unlimited: true}
}

// Limited returns a limit of maxPerInterval events per interval.
func Limited(maxPerInterval uint32, interval time.Duration) TimeRateLimit {
	return TimeRateLimit{
		MaxPerInterval: maxPerInterval,
		TimeInterval:   types.NewDuration(interval),
	}
}

func (t TimeRateLimit) String() string {
	if t.Unlimited {
		return unlimitedStr
	}
	return fmt.Sprintf("%d per %s", t.MaxPerInterval, t.TimeInterval)
}

func (t TimeRateLimit) Validate() error {
	if t.Unlimited {
		return nil
	}
	if t.TimeInterval.Duration <= 0 {
		return fmt.Errorf("rate limit %s: time interval must be positive", t)
	}
	return nil
}

// JSONSchema returns a custom schema to be used for the JSON Schema generation of this type
func (TimeRateLimit) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("MaxPerInterval", &jsonschema.Schema{Type: "integer", Minimum: "0"})
	props.Set("TimeInterval", types.Duration{}.JSONSchema())
	return &jsonschema.Schema{
		Title:       "TimeRateLimit",
		Description: "Either \"unlimited\" or a maximum number of events in a time interval",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Enum: []interface{}{unlimitedStr}},
			{Type: "object", Properties: props, Required: []string{"MaxPerInterval", "TimeInterval"}},
		},
	}
}

// NetworkConfig holds the overrides for a single network. Nil fields fall back to the defaults.
type NetworkConfig struct {
	SendTx *TimeRateLimit `mapstructure:"SendTx"`
}

// Config is the rate limiting configuration: the defaults and the per-network overrides.
type Config struct {
	// SendTx limits the proof generation requests
	SendTx TimeRateLimit `mapstructure:"SendTx"`
	// Network holds overrides keyed by network id
	Network map[uint32]NetworkConfig `mapstructure:"Network"`
}

// DefaultConfig allows one sendTx per hour on every network.
func DefaultConfig() Config {
	return Config{
		SendTx: Limited(1, DefaultSendTxInterval),
	}
}

// WithSendTxOverride returns a copy of the config with a sendTx override for networkID.
func (c Config) WithSendTxOverride(networkID uint32, limit TimeRateLimit) Config {
	networks := make(map[uint32]NetworkConfig, len(c.Network)+1)
	for id, n := range c.Network {
		networks[id] = n
	}
	networks[networkID] = NetworkConfig{SendTx: &limit}
	c.Network = networks
	return c
}

// ConfigFor resolves the sendTx limit that applies to networkID.
func (c Config) ConfigFor(networkID uint32) TimeRateLimit {
	if n, ok := c.Network[networkID]; ok && n.SendTx != nil {
		return *n.SendTx
	}
	return c.SendTx
}

func (c Config) Validate() error {
	if err := c.SendTx.Validate(); err != nil {
		return fmt.Errorf("SendTx: %w", err)
	}
	for id, n := range c.Network {
		if n.SendTx == nil {
			continue
		}
		if err := n.SendTx.Validate(); err != nil {
			return fmt.Errorf("Network.%d.SendTx: %w", id, err)
		}
	}
	return nil
}

var timeRateLimitType = reflect.TypeOf(TimeRateLimit{})

// DecodeHook decodes a TimeRateLimit from "unlimited" or from a
// {MaxPerInterval, TimeInterval} table.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if to != timeRateLimitType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			if strings.EqualFold(strings.TrimSpace(v), unlimitedStr) {
				return Unlimited(), nil
			}
			return nil, fmt.Errorf("invalid rate limit %q: only %q is accepted as a string", v, unlimitedStr)
		case map[string]interface{}:
			return decodeLimited(v)
		case map[interface{}]interface{}:
			m := make(map[string]interface{}, len(v))
			for k, val := range v {
				m[fmt.Sprint(k)] = val
			}
			return decodeLimited(m)
		default:
			return data, nil
		}
	}
}

func decodeLimited(m map[string]interface{}) (TimeRateLimit, error) {
	var (
		res                 TimeRateLimit
		hasMax, hasInterval bool
	)
	// a saved config writes the Unlimited flag next to the other fields
	for key, val := range m {
		var err error
		switch normalizeKey(key) {
		case "maxperinterval":
			res.MaxPerInterval, err = toUint32(val)
			hasMax = true
		case "timeinterval":
			res.TimeInterval, err = toDuration(val)
			hasInterval = true
		case "unlimited":
			res.Unlimited, err = toBool(val)
		default:
			err = errors.New("unknown field")
		}
		if err != nil {
			return TimeRateLimit{}, fmt.Errorf("rate limit field %s: %w", key, err)
		}
	}
	if res.Unlimited {
		return Unlimited(), nil
	}
	if !hasMax || !hasInterval {
		return TimeRateLimit{}, errors.New("rate limit requires both MaxPerInterval and TimeInterval")
	}
	return res, nil
}

func toBool(val interface{}) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return false, fmt.Errorf("unexpected type %T", val)
	}
}

func normalizeKey(key string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(key))
}

func toUint32(val interface{}) (uint32, error) {
	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint32:
		return v, nil
	case uint64:
		if v > uint64(^uint32(0)) {
			return 0, fmt.Errorf("%d overflows uint32", v)
		}
		return uint32(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		n = int64(v)
	case string:
		u, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, err
		}
		return uint32(u), nil
	default:
		return 0, fmt.Errorf("unexpected type %T", val)
	}
	if n < 0 || n > int64(^uint32(0)) {
		return 0, fmt.Errorf("%d out of range", n)
	}
	return uint32(n), nil
}

func toDuration(val interface{}) (types.Duration, error) {
	switch v := val.(type) {
	case string:
		d, err := types.ParseDuration(v)
		if err != nil {
			return types.Duration{}, err
		}
		return types.NewDuration(d), nil
	case time.Duration:
		return types.NewDuration(v), nil
	case types.Duration:
		return v, nil
	default:
		return types.Duration{}, fmt.Errorf("unexpected type %T", val)
	}
}

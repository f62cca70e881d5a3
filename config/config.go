package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/agglayer/aggkit-prover/aggchainproofservice"
	"github.com/agglayer/aggkit-prover/common"
	"github.com/agglayer/aggkit-prover/log"
	"github.com/agglayer/aggkit-prover/pprof"
	"github.com/agglayer/aggkit-prover/prometheus"
	"github.com/agglayer/aggkit-prover/ratelimit"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagDisableDefaultConfigVars is the flag to force all variables to be set on config-files
	FlagDisableDefaultConfigVars = "disable-default-config-vars"
	// FlagAllowDeprecatedFields is the flag to allow deprecated fields
	FlagAllowDeprecatedFields = "allow-deprecated-fields"

	EnvVarPrefix       = "AGGKIT_PROVER"
	ConfigType         = "toml"
	SaveConfigFileName = "aggkit_prover_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)

	proposerSectionMoved = "Proposer section moved to AggchainProofService.Proposer"
	builderSectionMoved  = "AggchainProofBuilder section moved to AggchainProofService.AggchainProofBuilder"
	builderKeyRenamed    = "AggchainProofService.AggchainProofBuilder.SignerKey is deprecated, " +
		"use AggchainProofService.AggchainProofBuilder.TrustedSequencerKey instead"
)

type DeprecatedFieldsError struct {
	// key is the rule and the value is the field's name that matches the rule
	Fields map[DeprecatedField][]string
}

func NewErrDeprecatedFields() *DeprecatedFieldsError {
	return &DeprecatedFieldsError{
		Fields: make(map[DeprecatedField][]string),
	}
}

func (e *DeprecatedFieldsError) AddDeprecatedField(fieldName string, rule DeprecatedField) {
	p := e.Fields[rule]
	e.Fields[rule] = append(p, fieldName)
}

func (e *DeprecatedFieldsError) Error() string {
	res := "found deprecated fields:"
	for rule, fieldsMatches := range e.Fields {
		res += fmt.Sprintf("\n\t- %s: %s", rule.Reason, strings.Join(fieldsMatches, ", "))
	}
	return res
}

type DeprecatedField struct {
	// If the field name ends with a dot means that match a section
	FieldNamePattern string
	Reason           string
}

var (
	deprecatedFieldsOnConfig = []DeprecatedField{
		{
			FieldNamePattern: "AggchainProofService.AggchainProofBuilder.SignerKey.",
			Reason:           builderKeyRenamed,
		},
		{
			FieldNamePattern: "Proposer.",
			Reason:           proposerSectionMoved,
		},
		{
			FieldNamePattern: "AggchainProofBuilder.",
			Reason:           builderSectionMoved,
		},
	}
)

/*
Config represents the configuration of the aggkit prover
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config

	// RPC is the config for the JSON-RPC server exposing aggkitprover_generateAggchainProof
	RPC jRPC.Config

	// Prometheus is the configuration of the prometheus service
	Prometheus prometheus.Config

	// Profiling is the configuration of the profiling service
	Profiling pprof.Config

	// Common Config that affects all the services
	Common common.Config

	// AggchainProofService configures the proposer and the aggchain proof builder stages
	AggchainProofService aggchainproofservice.Config

	// RateLimiting limits the proof requests per network
	RateLimiting ratelimit.Config
}

// provingBudget is the longest a proof request can take: the proposer
// stage followed by the builder stage
func (c *Config) provingBudget() time.Duration {
	return c.AggchainProofService.Proposer.ProvingTimeout.Duration +
		c.AggchainProofService.AggchainProofBuilder.ProverTimeout.Duration
}

// setDerivedDefaults fills the values that default to a combination of other fields
func (c *Config) setDerivedDefaults() {
	if c.RPC.WriteTimeout.Duration == 0 {
		c.RPC.WriteTimeout.Duration = c.provingBudget()
	}
}

// Validate checks the sections that can't be used with their zero values
func (c *Config) Validate() error {
	if budget := c.provingBudget(); c.RPC.WriteTimeout.Duration < budget {
		return fmt.Errorf("RPC.WriteTimeout %s is shorter than the proving budget %s "+
			"(Proposer.ProvingTimeout + AggchainProofBuilder.ProverTimeout)", c.RPC.WriteTimeout.Duration, budget)
	}
	if err := c.AggchainProofService.Proposer.Validate(); err != nil {
		return fmt.Errorf("AggchainProofService.Proposer: %w", err)
	}
	if err := c.AggchainProofService.AggchainProofBuilder.Validate(); err != nil {
		return fmt.Errorf("AggchainProofService.AggchainProofBuilder: %w", err)
	}
	if err := c.RateLimiting.Validate(); err != nil {
		return fmt.Errorf("RateLimiting: %w", err)
	}
	return nil
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	defaultConfigVars := !ctx.Bool(FlagDisableDefaultConfigVars)
	allowDeprecatedFields := ctx.Bool(FlagAllowDeprecatedFields)
	return LoadFile(filesData, saveConfigPath, defaultConfigVars, allowDeprecatedFields)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func readFileToString(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func getFileExtension(fileName string) string {
	return strings.ToLower(fileName[strings.LastIndex(fileName, ".")+1:])
}

// LoadFileFromString decodes a rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

func SaveConfigToFile(cfg *Config, saveConfigPath string) error {
	marshaled, err := toml.Marshal(cfg)
	if err != nil {
		log.Errorf("Can't marshal config to toml. Err: %v", err)
		return err
	}
	return SaveDataToFile(saveConfigPath, "final config file", marshaled)
}

func SaveDataToFile(fullPath, reason string, data []byte) error {
	log.Infof("Writing %s to: %s", reason, fullPath)
	err := os.WriteFile(fullPath, data, DefaultCreationFilePermissions)
	if err != nil {
		err = fmt.Errorf("error writing %s to file %s. Err: %w", reason, fullPath, err)
		log.Error(err)
		return err
	}
	return nil
}

// LoadFile merges files over the defaults, renders the variables and decodes the result
func LoadFile(files []FileData, saveConfigPath string,
	setDefaultVars bool, allowDeprecatedFields bool) (*Config, error) {
	log.Infof("Loading configuration: saveConfigPath: %s, setDefaultVars: %t, allowDeprecatedFields: %t",
		saveConfigPath, setDefaultVars, allowDeprecatedFields)
	fileData := make([]FileData, 0)
	if setDefaultVars {
		log.Info("Setting default vars")
		fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	}
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, fmt.Sprintf("%s.merged", SaveConfigFileName))
		err = SaveDataToFile(fullPath, "merged config file", []byte(renderedCfg))
		if err != nil {
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	// If allowDeprecatedFields is true, we ignore the deprecated fields
	if err != nil && allowDeprecatedFields {
		var customErr *DeprecatedFieldsError
		if errors.As(err, &customErr) {
			log.Warnf("detected deprecated fields: %s", err.Error())
			err = nil
		}
	}

	if err != nil {
		return nil, err
	}
	cfg.setDerivedDefaults()
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = SaveConfigToFile(cfg, fullPath)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// DecodeHooks are the hooks used to decode the configuration
func DecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		ratelimit.DecodeHook(),
		mapstructure.TextUnmarshallerHookFunc(),
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		mapstructure.StringToSliceHookFunc(","),
	)
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBufferString(configData))
	if err != nil {
		return err
	}

	err = v.Unmarshal(cfg, viper.DecodeHook(DecodeHooks()))
	if err != nil {
		return err
	}
	return checkDeprecatedFields(v.AllKeys())
}

func checkDeprecatedFields(keysOnConfig []string) error {
	err := NewErrDeprecatedFields()
	for _, key := range keysOnConfig {
		forbbidenInfo := getDeprecatedField(key)
		if forbbidenInfo != nil {
			err.AddDeprecatedField(key, *forbbidenInfo)
		}
	}
	if len(err.Fields) > 0 {
		return err
	}
	return nil
}

func getDeprecatedField(fieldName string) *DeprecatedField {
	fieldName = strings.ToLower(fieldName)
	for _, deprecatedField := range deprecatedFieldsOnConfig {
		pattern := strings.ToLower(deprecatedField.FieldNamePattern)
		if pattern == fieldName {
			return &deprecatedField
		}
		// If the field name ends with a dot, it means FieldNamePattern*
		if strings.HasSuffix(pattern, ".") && strings.HasPrefix(fieldName, pattern) {
			return &deprecatedField
		}
	}
	return nil
}

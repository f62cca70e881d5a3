package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"
	"gopkg.in/yaml.v3"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// rendered values can contain placeholders themselves
	maxRenderIterations = 10
)

// FileData is the content of a configuration file, Name is only used for errors
type FileData struct {
	Name    string
	Content string
}

// ConfigRender merges configuration files and resolves the {{Var}} placeholders.
// A placeholder is resolved from the environment (EnvPrefix_VAR, dots replaced by
// underscores) or, failing that, from any key of the merged files.
type ConfigRender struct {
	FilesData []FileData
	EnvPrefix string
	// LookupEnv is os.LookupEnv unless replaced
	LookupEnv func(key string) (string, bool)
}

func NewConfigRender(filesData []FileData, envPrefix string) *ConfigRender {
	return &ConfigRender{
		FilesData: filesData,
		EnvPrefix: envPrefix,
		LookupEnv: os.LookupEnv,
	}
}

// Merge loads every file in order, later files override earlier ones
func (c *ConfigRender) Merge() (*koanf.Koanf, error) {
	k := koanf.New(".")
	for _, file := range c.FilesData {
		if err := k.Load(rawbytes.Provider([]byte(file.Content)), koanftoml.Parser()); err != nil {
			return nil, fmt.Errorf("error merging config file %s: %w", file.Name, err)
		}
	}
	return k, nil
}

// Render returns the merged configuration as TOML with every placeholder replaced
func (c *ConfigRender) Render() (string, error) {
	k, err := c.Merge()
	if err != nil {
		return "", err
	}
	data, err := k.Marshal(koanftoml.Parser())
	if err != nil {
		return "", fmt.Errorf("error marshalling merged config: %w", err)
	}

	rendered := string(data)
	for i := 0; i < maxRenderIterations; i++ {
		next, unresolved, err := c.renderOnce(rendered, k)
		if err != nil {
			return "", err
		}
		if next == rendered {
			if len(unresolved) > 0 {
				return "", fmt.Errorf("config has unresolved vars: %s", strings.Join(unresolved, ", "))
			}
			return rendered, nil
		}
		rendered = next
	}
	return "", fmt.Errorf("config vars not resolved after %d iterations, check for cyclic references",
		maxRenderIterations)
}

func (c *ConfigRender) renderOnce(tpl string, k *koanf.Koanf) (string, []string, error) {
	unresolvedSet := map[string]struct{}{}
	res, err := fasttemplate.ExecuteFuncStringWithErr(tpl, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			name := strings.TrimSpace(tag)
			if value, ok := c.lookup(name, k); ok {
				return w.Write([]byte(value))
			}
			unresolvedSet[name] = struct{}{}
			return w.Write([]byte(startTag + tag + endTag))
		})
	if err != nil {
		return "", nil, fmt.Errorf("error rendering config: %w", err)
	}
	unresolved := make([]string, 0, len(unresolvedSet))
	for name := range unresolvedSet {
		unresolved = append(unresolved, name)
	}
	sort.Strings(unresolved)
	return res, unresolved, nil
}

func (c *ConfigRender) lookup(name string, k *koanf.Koanf) (string, bool) {
	if c.LookupEnv != nil && c.EnvPrefix != "" {
		envKey := c.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))
		if value, ok := c.LookupEnv(envKey); ok {
			return value, true
		}
	}
	if !k.Exists(name) {
		return "", false
	}
	switch value := k.Get(name).(type) {
	case map[string]interface{}, []interface{}:
		return "", false
	default:
		return fmt.Sprint(value), true
	}
}

// convertFileToToml converts json and yaml configuration files to TOML
func convertFileToToml(fileData string, fileType string) (string, error) {
	var (
		content map[string]interface{}
		err     error
	)
	switch fileType {
	case "json":
		content, err = json.Parser().Unmarshal([]byte(fileData))
	case "yaml", "yml":
		err = yaml.Unmarshal([]byte(fileData), &content)
	default:
		return "", fmt.Errorf("unsupported config file type %q", fileType)
	}
	if err != nil {
		return "", err
	}
	data, err := toml.Marshal(content)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

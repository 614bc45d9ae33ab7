package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/valtips-cli/valtips/color"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/key"
	"github.com/valtips-cli/valtips/style"
)

// Field is a registered configuration key with its default and help text.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `valtips config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.TypeName(),
	})
}

// TypeName names the Go type of the default value.
func (f *Field) TypeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field keyed by its config key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.YouTubeAPIKey, "", "YouTube Data API key.\nFalls back to the system keyring (see \"valtips auth\").\nWithout a key every video search returns no results")
	register(key.YouTubePageSize, 30, "Number of videos requested per page (1-50)")
	register(key.YouTubeTopicSuffix, "valorant tips shorts", "Words appended to \"<agent> <map>\" to build the search phrase")
	register(key.YouTubeBaseURL, "https://youtube.googleapis.com/youtube/v3", "Base URL of the YouTube Data API")
	register(key.CatalogBaseURL, "https://valorant-api.com/v1", "Base URL of the game-data catalog API")
	register(key.CatalogCacheHours, 24, "How long catalog responses are cached, in hours.\n0 disables the cache")
	register(key.FavoritesShowOnly, false, "Show only favorite agents by default")
	register(key.NetworkTimeoutSeconds, 30, "Timeout for a single HTTP request, in seconds")
	register(key.OpenWith, "", "Application used to open video links.\nEmpty uses the system default handler")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd (nerd-font required), plain")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a new release on start")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"blue":     style.Fg(color.Blue),
	"purple":   style.Fg(color.Purple),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))

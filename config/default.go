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
	"github.com/trixio-cli/trixio/color"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/key"
	"github.com/trixio-cli/trixio/style"
)

// Field describes one configuration key and its factory value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `trixio config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable that overrides the field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Trixio + "_")
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
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
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

// Default maps every known key to its field.
var Default = make(map[string]Field)

// EnvExposed lists keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.CatalogAPIKey, "8265bd1679663a7ea12ac168da84d2e8", "Catalog API key sent as the api_key query parameter")
	register(key.CatalogBaseURL, "https://api.themoviedb.org/3", "Base URL of the catalog API, without a trailing slash")
	register(key.CatalogImageBaseURL, "https://image.tmdb.org/t/p", "Base URL of the image CDN, without the size token")
	register(key.CatalogLanguage, "it-IT", "Language sent with every catalog request")
	register(key.CatalogCacheTTL, 300, "Seconds a cached catalog response stays valid.\nSet to 0 to disable the response cache")
	register(key.PlaybackProvider, "vixsrc.to", "Host of the playback provider")
	register(key.PlaybackRelays, []string{"cors-anywhere.com/", "corsproxy.io/", "api.allorigins.win/raw?url="}, "Ordered list of CORS relay hosts")
	register(key.PlaybackRelayIndex, 1, "Index of the active CORS relay in playback.relays")
	register(key.PlaybackPlayer, "mpv", "Program used to open playback URLs.\nLeave empty to use the system default handler")
	register(key.AccessPassword, "trixio123", "Password unlocking the catalog.\nThis is a convenience gate, not a security boundary")
	register(key.AccessSessionTimeout, 3600, "Seconds an unlocked session lasts")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.SearchMinLength, 2, "Queries shorter than this are not sent to the catalog")
	register(key.HistorySaveOnPlay, true, "Record played titles in the watch history")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when printing help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
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

package siteswap

import (
	"net/url"
	"strings"
)

// DefaultBaseURL is the Juggling Lab animation endpoint.
const DefaultBaseURL = "https://jugglinglab.org/anim?"

// The service's own width and height defaults differ from the settings
// defaults, so elision compares against these instead.
const (
	ServiceDefaultWidth  = 400
	ServiceDefaultHeight = 450
)

// internalKeys are never sent to the service.
var internalKeys = map[string]bool{
	KeyScale: true,
}

// serviceKeys lists the parameters documented by the animation service.
var serviceKeys = map[string]bool{
	KeyPattern:      true,
	KeyRedirect:     true,
	KeyWidth:        true,
	KeyHeight:       true,
	KeyFPS:          true,
	KeyStereo:       true,
	KeySlowdown:     true,
	KeyCamAngle:     true,
	KeyShowGround:   true,
	KeyHideJugglers: true,
	KeyHands:        true,
	"border":        true,
	"bps":           true,
	"dwell":         true,
	"body":          true,
	"colors":        true,
	"prop":          true,
	"propdiam":      true,
	"gravity":       true,
	"bouncefrac":    true,
	"squeezebeats":  true,
	"hss":           true,
	"handspec":      true,
	"dwellmax":      true,
	"hold":          true,
	"title":         true,
	"startpaused":   true,
	"mousepause":    true,
	"catchsound":    true,
	"bouncesound":   true,
}

// elisionTable returns the comparison table used to drop default values.
func elisionTable(defaults Settings) Params {
	return defaults.Params().
		With(KeyWidth, Number(ServiceDefaultWidth), SourceSettings).
		With(KeyHeight, Number(ServiceDefaultHeight), SourceSettings)
}

// elide filters params against the defaults table and returns the kept
// parameters along with what was removed.
func elide(params Params, table Params) (Params, []Elision) {
	kept := make(Params, 0, len(params))
	var elided []Elision
	for _, param := range params {
		switch {
		case internalKeys[param.Key]:
			elided = append(elided, Elision{Param: param, Reason: ElidedInternal})
		case isDefault(param, table):
			elided = append(elided, Elision{Param: param, Reason: ElidedDefault})
		default:
			kept = append(kept, param)
		}
	}
	return kept, elided
}

func isDefault(param Param, table Params) bool {
	if param.Key == KeyPattern || param.Key == KeyRedirect {
		return false
	}
	def, ok := table.Get(param.Key)
	return ok && def.Equal(param.Value)
}

// EncodeQuery serializes params as a ';'-joined list of percent-encoded
// key=value pairs.
func EncodeQuery(params Params) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, encodeComponent(param.Key)+"="+encodeComponent(param.Value.String()))
	}
	return strings.Join(parts, ";")
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

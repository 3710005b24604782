package enums

import "strings"

// configShortCodes maps the well known configuration names to their
// file name suffixes. Unknown configurations fall back to their own
// lowercased name.
var configShortCodes = map[string]string{
	"debug":           "dbg",
	"internal":        "int",
	"release":         "rel",
	"profile":         "pro",
	"release_ltcg":    "ltc",
	"codeanalysis":    "cod",
	"profile_fastcap": "fas",
}

// ConfigShortCode returns the file name suffix for a configuration
// name, e.g. "Debug" becomes "dbg".
func ConfigShortCode(name string) string {
	if code, ok := configShortCodes[strings.ToLower(name)]; ok {
		return code
	}
	return strings.ToLower(name)
}

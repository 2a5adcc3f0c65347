package endpoints

import "strings"

// The logo CDN keys a few franchises differently from the league tricode.
var logoAbbreviations = map[string]string{
	"NOP": "NO",
	"UTA": "UTAH",
}

// LogoAbbreviation returns the CDN key for a team tricode. Tricodes without a remap pass through unchanged.
func LogoAbbreviation(tricode string) string {
	if remapped, ok := logoAbbreviations[strings.ToUpper(tricode)]; ok {
		return remapped
	}
	return tricode
}

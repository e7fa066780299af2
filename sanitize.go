package uwdocs

import "regexp"

var (
	// <img src="img/shield.png" alt="Shield"> or the self-closed form.
	iconRe = regexp.MustCompile(`<img\s+src="[^"]*"\s+alt="([^"]*)"\s*/?>`)

	// <p class="text-center p-2 weapon">...</p>; the inner content must be
	// plain text, so icons are rewritten first.
	weaponRe = regexp.MustCompile(`<p\s+class="(?:[^"]*\s)?weapon(?:\s[^"]*)?">([^<]*)</p>`)
)

// SanitizeText rewrites the two markup idioms used in scraped rules text into
// bracket tokens: icon images become [Alt] and weapon blocks become
// [Weapon]...[/Weapon]. Any other markup is left as is.
func SanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	text := iconRe.ReplaceAllString(raw, "[$1]")
	return weaponRe.ReplaceAllString(text, "[Weapon]$1[/Weapon]")
}

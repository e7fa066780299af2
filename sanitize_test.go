package uwdocs_test

import (
	"testing"

	"github.com/fwojciec/uwdocs"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "icon becomes bracket token",
			input: `<img src="img/shield.png" alt="Shield">`,
			want:  "[Shield]",
		},
		{
			name:  "self-closed icon",
			input: `<img src="img/shield.png" alt="Shield"/>`,
			want:  "[Shield]",
		},
		{
			name:  "icons inside sentence",
			input: `Roll a <img src="img/dice-crit.png" alt="Critical"> or <img src="img/hammer.png" alt="Hammer">.`,
			want:  "Roll a [Critical] or [Hammer].",
		},
		{
			name:  "weapon block",
			input: `<p class="text-center weapon">[Hammer] 2 [Damage] 2</p>`,
			want:  "[Weapon][Hammer] 2 [Damage] 2[/Weapon]",
		},
		{
			name:  "weapon block with long class list and icons",
			input: `<p class="text-center p-2 mb-2 text-white weapon"><img src="img/hex.png" alt="Hex"> 1 <img src="img/hammer.png" alt="Hammer"> 2</p>`,
			want:  "[Weapon][Hex] 1 [Hammer] 2[/Weapon]",
		},
		{
			name:  "weapon marker in middle of class list",
			input: `<p class="weapon text-center">Range 3</p>`,
			want:  "[Weapon]Range 3[/Weapon]",
		},
		{
			name:  "paragraph without weapon marker untouched",
			input: `<p class="text-center weaponry">Range 3</p>`,
			want:  `<p class="text-center weaponry">Range 3</p>`,
		},
		{
			name:  "no icon markup returned unchanged",
			input: "Reaction: after an enemy fighter's Attack action, <b>push</b> this fighter 1 hex.",
			want:  "Reaction: after an enemy fighter's Attack action, <b>push</b> this fighter 1 hex.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, uwdocs.SanitizeText(tt.input))
		})
	}
}

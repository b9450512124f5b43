// SPDX-License-Identifier: MIT
package themes

import "fmt"

// fontStacks maps a site's font pair to body/heading font stacks
var fontStacks = map[string][2]string{
	"system": {
		`-apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		`-apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
	},
	"serif": {
		`Georgia, "Times New Roman", serif`,
		`Georgia, "Times New Roman", serif`,
	},
	"mixed": {
		`-apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`,
		`Georgia, "Times New Roman", serif`,
	},
}

// GenerateCSS generates the theme stylesheet that heads a site's merged CSS
// bundle.
func GenerateCSS(colors *Colors, fontPair string) string {
	fonts, ok := fontStacks[fontPair]
	if !ok {
		fonts = fontStacks["system"]
	}

	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
  font-family: %s;
}

h1, h2, h3, h4, h5, h6 {
  color: var(--color-text);
  font-family: %s;
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

button, .btn {
  background-color: var(--color-primary);
  color: var(--color-bg);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
}

.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

.text-muted, .muted {
  color: var(--color-text-muted);
}
`, colors.Primary, colors.Secondary, colors.Background, colors.Surface,
		colors.Text, colors.TextMuted, colors.Border, fonts[0], fonts[1])
}

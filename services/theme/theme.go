// Package theme resolves design tokens by name. Components never hard-code
// colours or font stacks; they ask for a token and get a CSS value back.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Modes understood by the theme toggle script
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// ModeAttribute is the <html> attribute the toggle switches
const ModeAttribute = "class"

const systemFontStack = "system-ui, -apple-system, Segoe UI, Roboto, Arial, sans-serif"

// colors maps token names to hex values
var colors = map[string]string{
	"brand.500": "#2f6bff",
	"brand.600": "#1f52db",
	"brand.700": "#163caf",

	"gray.50":  "#fafafa",
	"gray.100": "#f4f4f5",
	"gray.200": "#e4e4e7",
	"gray.600": "#52525b",
	"gray.700": "#3f3f46",
	"gray.900": "#18181b",
	"white":    "#ffffff",
}

var fonts = map[string]string{
	"heading": systemFontStack,
	"body":    systemFontStack,
}

var shadows = map[string]string{
	"sm": "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
	"md": "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
}

// Color returns the hex value of a colour token
func Color(token string) (string, error) {
	v, ok := colors[token]
	if !ok {
		return "", fmt.Errorf("unknown color token %q", token)
	}
	return v, nil
}

// Font returns the font stack of a font token
func Font(token string) (string, error) {
	v, ok := fonts[token]
	if !ok {
		return "", fmt.Errorf("unknown font token %q", token)
	}
	return v, nil
}

// Var returns the CSS custom property reference for a colour token,
// e.g. "brand.600" -> "var(--color-brand-600)".
func Var(token string) string {
	return "var(" + colorProperty(token) + ")"
}

// ShadowVar returns the CSS custom property reference for a shadow token
func ShadowVar(token string) string {
	return "var(--shadow-" + token + ")"
}

// CSSVariables renders the :root block defining every token
func CSSVariables() string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, token := range sortedKeys(colors) {
		fmt.Fprintf(&b, "%s:%s;", colorProperty(token), colors[token])
	}
	for _, token := range sortedKeys(fonts) {
		fmt.Fprintf(&b, "--font-%s:%s;", token, fonts[token])
	}
	for _, token := range sortedKeys(shadows) {
		fmt.Fprintf(&b, "--shadow-%s:%s;", token, shadows[token])
	}
	b.WriteString("}")
	return b.String()
}

func colorProperty(token string) string {
	return "--color-" + strings.ReplaceAll(token, ".", "-")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

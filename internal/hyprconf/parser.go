// Package hyprconf extracts annotated keybindings from a Hyprland config file.
//
// Only two line shapes are understood:
//
//	$mainMod = SUPER
//	bind = $mainMod, T, exec, kitty # [Terminal] Open terminal
//
// Everything else is skipped. Bindings are kept only when their trailing
// comment carries a bracketed title.
package hyprconf

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hyprhelp/hyprhelp/internal/domain"
	"github.com/hyprhelp/hyprhelp/internal/logging"
)

const (
	// DefaultModifier is the modifier reported when no alias declaration is found
	DefaultModifier = "SUPER"
	// DefaultModifierAlias is the variable name holding the main modifier
	DefaultModifierAlias = "mainMod"

	mouseKeyMarker = "mouse"
)

// Options controls how a config is interpreted
type Options struct {
	DefaultModifier string // Modifier used until an alias declaration resolves it
	ModifierAlias   string // Variable name without the leading '$'
}

// DefaultOptions returns the options matching a stock Hyprland config
func DefaultOptions() Options {
	return Options{
		DefaultModifier: DefaultModifier,
		ModifierAlias:   DefaultModifierAlias,
	}
}

func (o Options) withDefaults() Options {
	if o.DefaultModifier == "" {
		o.DefaultModifier = DefaultModifier
	}
	if o.ModifierAlias == "" {
		o.ModifierAlias = DefaultModifierAlias
	}
	return o
}

// Result is the outcome of parsing one config file
type Result struct {
	Bindings *domain.KeyMap
	Modifier string
}

// Empty reports whether no binding was extracted
func (r Result) Empty() bool {
	return r.Bindings.Len() == 0
}

var (
	aliasPattern   = regexp.MustCompile(`^\$(\w+)\s*=\s*(.*)$`)
	commentPattern = regexp.MustCompile(`^\s*\[([^\]]*)\]\s*(.*)$`)
)

// aliasDecl is a matched `$name = value` line
type aliasDecl struct {
	name  string
	value string
}

// bindDecl is a matched `bind = mods, key, command # comment` line
type bindDecl struct {
	comment    string
	hasComment bool
	key        string
	mods       string
}

// ParseFile reads and parses the config at path. A missing, unreadable or
// non-UTF-8 file yields an empty result with the default modifier.
func ParseFile(path string, opts Options) Result {
	opts = opts.withDefaults()

	text, err := readConfig(path)
	if err != nil {
		logging.Logger.Debug("No bindings parsed", "path", path, "error", err)
		return emptyResult(opts)
	}

	result := Parse(text, opts)
	logging.Logger.Debug("Config parsed",
		"path", path,
		"modifier", result.Modifier,
		"bindings", result.Bindings.Len())
	return result
}

// readConfig returns the file contents; every failure wraps domain.ErrConfigUnreadable
func readConfig(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrConfigUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrConfigUnreadable, path)
	}
	return string(data), nil
}

// Parse extracts the resolved modifier and the titled bindings from config text
func Parse(text string, opts Options) Result {
	opts = opts.withDefaults()

	modifier := opts.DefaultModifier
	bindings := domain.NewKeyMap("")

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if decl, ok := matchAlias(line); ok {
			if decl.name == opts.ModifierAlias {
				modifier = decl.value
				continue
			}
		}

		decl, ok := matchBind(line)
		if !ok {
			continue
		}
		if b, ok := toBinding(decl, opts.ModifierAlias, modifier); ok {
			bindings.Set(b)
		}
	}

	bindings.Modifier = modifier
	return Result{Bindings: bindings, Modifier: modifier}
}

func emptyResult(opts Options) Result {
	return Result{
		Bindings: domain.NewKeyMap(opts.DefaultModifier),
		Modifier: opts.DefaultModifier,
	}
}

// matchAlias recognizes `$name = value`; a trailing comment is not part of the value
func matchAlias(line string) (aliasDecl, bool) {
	m := aliasPattern.FindStringSubmatch(line)
	if m == nil {
		return aliasDecl{}, false
	}
	value, _, _ := splitComment(m[2])
	return aliasDecl{name: m[1], value: strings.TrimSpace(value)}, true
}

// matchBind recognizes `bind = mods, key, command...` with an optional `# comment`
func matchBind(line string) (bindDecl, bool) {
	keyword, rest, ok := strings.Cut(line, "=")
	if !ok || strings.TrimSpace(keyword) != "bind" {
		return bindDecl{}, false
	}

	body, comment, hasComment := splitComment(rest)

	fields := strings.SplitN(body, ",", 3)
	if len(fields) < 3 {
		return bindDecl{}, false
	}
	key := strings.TrimSpace(fields[1])
	if key == "" {
		return bindDecl{}, false
	}

	return bindDecl{
		comment:    comment,
		hasComment: hasComment,
		key:        key,
		mods:       strings.TrimSpace(fields[0]),
	}, true
}

// splitComment cuts s at the first `#` that starts a comment. Hyprland writes a
// literal `#` as `##`; those pairs are unescaped in body and never start a comment.
func splitComment(s string) (body, comment string, found bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '#' {
			b.WriteByte('#')
			i++
			continue
		}
		return b.String(), s[i+1:], true
	}
	return b.String(), "", false
}

// toBinding applies the modifier, mouse and title filters to a matched bind line
func toBinding(decl bindDecl, alias, modifier string) (domain.Binding, bool) {
	usesMain := strings.Contains(decl.mods, "$"+alias) ||
		(modifier != "" && strings.Contains(decl.mods, modifier))
	if !usesMain {
		return domain.Binding{}, false
	}

	if strings.Contains(strings.ToLower(decl.key), mouseKeyMarker) {
		return domain.Binding{}, false
	}

	if !decl.hasComment {
		return domain.Binding{}, false
	}
	title, description, ok := parseAnnotation(decl.comment)
	if !ok {
		return domain.Binding{}, false
	}

	return domain.Binding{
		Description: description,
		Key:         domain.NormalizeSymbol(decl.key),
		Title:       title,
	}, true
}

// parseAnnotation splits `[Title] description` into its trimmed parts.
// An empty title is treated as no annotation.
func parseAnnotation(comment string) (title, description string, ok bool) {
	m := commentPattern.FindStringSubmatch(comment)
	if m == nil {
		return "", "", false
	}
	title = strings.TrimSpace(m[1])
	if title == "" {
		return "", "", false
	}
	return title, strings.TrimSpace(m[2]), true
}

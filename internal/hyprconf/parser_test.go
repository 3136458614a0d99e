package hyprconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprhelp/hyprhelp/internal/domain"
)

func TestParse_AliasAndAnnotatedBind(t *testing.T) {
	text := `
$mainMod = SUPER
bind = $mainMod, T, exec, kitty # [Terminal] Open terminal
`
	result := Parse(text, DefaultOptions())

	assert.Equal(t, "SUPER", result.Modifier)
	require.Equal(t, 1, result.Bindings.Len())

	b, ok := result.Bindings.Get("T")
	require.True(t, ok)
	assert.Equal(t, "Terminal", b.Title)
	assert.Equal(t, "Open terminal", b.Description)
}

func TestParse_KeyAliasing(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected domain.Symbol
	}{
		{"lowercase left", "left", domain.SymbolLeft},
		{"uppercase right", "RIGHT", domain.SymbolRight},
		{"mixed up", "Up", domain.SymbolUp},
		{"down", "down", domain.SymbolDown},
		{"return", "Return", domain.SymbolEnter},
		{"letter", "q", "Q"},
		{"digit", "1", "1"},
		{"function key", "f3", "F3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "bind = SUPER, " + tt.key + ", movefocus, l # [Focus] x"
			result := Parse(text, DefaultOptions())

			require.Equal(t, 1, result.Bindings.Len())
			assert.Equal(t, []domain.Symbol{tt.expected}, result.Bindings.Symbols())
		})
	}
}

func TestParse_LeftIsNotKeptAsWord(t *testing.T) {
	result := Parse("bind = SUPER, left, movefocus, l # [Focus Left] x", DefaultOptions())

	assert.True(t, result.Bindings.Has(domain.SymbolLeft))
	assert.False(t, result.Bindings.Has("LEFT"))
}

func TestParse_TitleRequired(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no comment", "bind = SUPER, Q, killactive,"},
		{"plain comment", "bind = SUPER, Q, killactive, # just text"},
		{"empty brackets", "bind = SUPER, Q, killactive, # [] description"},
		{"blank title", "bind = SUPER, Q, killactive, # [   ] description"},
		{"unclosed bracket", "bind = SUPER, Q, killactive, # [Kill description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.line, DefaultOptions())
			assert.True(t, result.Empty())
		})
	}
}

func TestParse_TitleOnlyHasEmptyDescription(t *testing.T) {
	result := Parse("bind = SUPER, V, togglefloating, # [ Float ]", DefaultOptions())

	b, ok := result.Bindings.Get("V")
	require.True(t, ok)
	assert.Equal(t, "Float", b.Title)
	assert.Empty(t, b.Description)
}

func TestParse_LastWriteWins(t *testing.T) {
	text := `
bind = SUPER, Q, exec, first # [First] first one
bind = SUPER, W, exec, other # [Other] other one
bind = SUPER, q, exec, second # [Second] second one
`
	result := Parse(text, DefaultOptions())

	require.Equal(t, 2, result.Bindings.Len())
	b, _ := result.Bindings.Get("Q")
	assert.Equal(t, "Second", b.Title)
	assert.Equal(t, "second one", b.Description)
	assert.Equal(t, []domain.Symbol{"Q", "W"}, result.Bindings.Symbols())
}

func TestParse_RequiresMainModifier(t *testing.T) {
	text := `
$mainMod = SUPER
bind = ALT, Q, exec, a # [Alt] not shown
bind = , Print, exec, grim # [Screenshot] not shown
bind = $mainMod SHIFT, Q, exec, b # [Alias] shown via alias
bind = SUPER CTRL, W, exec, c # [Literal] shown via literal
`
	result := Parse(text, DefaultOptions())

	assert.Equal(t, []domain.Symbol{"Q", "W"}, result.Bindings.Symbols())
	b, _ := result.Bindings.Get("Q")
	assert.Equal(t, "Alias", b.Title)
}

func TestParse_ResolvedModifierFromAlias(t *testing.T) {
	text := `
$mainMod = ALT # main key
bind = ALT, E, exec, a # [Editor] via literal
`
	result := Parse(text, DefaultOptions())

	assert.Equal(t, "ALT", result.Modifier)
	assert.True(t, result.Bindings.Has("E"))
}

func TestParse_OtherAliasesIgnored(t *testing.T) {
	text := `
$terminal = kitty
bind = SUPER, Z, exec, $terminal # [Terminal] Launch terminal
`
	result := Parse(text, DefaultOptions())

	assert.Equal(t, "SUPER", result.Modifier)
	assert.True(t, result.Bindings.Has("Z"))
}

func TestParse_CustomAlias(t *testing.T) {
	text := `
$mod = ALT
bind = $mod, A, exec, a # [App] launch
`
	result := Parse(text, Options{ModifierAlias: "mod"})

	assert.Equal(t, "ALT", result.Modifier)
	assert.True(t, result.Bindings.Has("A"))
}

func TestParse_MouseBindsIgnored(t *testing.T) {
	text := `
bindm = SUPER, mouse:272, movewindow # [Move] not a bind line
bind = SUPER, mouse:272, movewindow # [Move] drag window
bind = SUPER, mouse_down, workspace, e+1 # [Scroll] next workspace
bind = SUPER, MOUSE:273, resizewindow # [Resize] resize
`
	result := Parse(text, DefaultOptions())

	assert.True(t, result.Empty())
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	text := `
# bind = SUPER, Q, exec, a # [Commented] out
bind = SUPER
bind = SUPER, , exec # [Empty] key
bind SUPER, Q, exec # [No] equals
binde = SUPER, R, resizeactive, 10 0 # [Resize] other directive
general {
    gaps_in = 5
}
bind = SUPER, M, exit, # [Exit] Leave Hyprland
`
	result := Parse(text, DefaultOptions())

	assert.Equal(t, []domain.Symbol{"M"}, result.Bindings.Symbols())
}

func TestParse_CRLF(t *testing.T) {
	text := "$mainMod = SUPER\r\nbind = $mainMod, F, fullscreen, # [Fullscreen] Toggle\r\n"
	result := Parse(text, DefaultOptions())

	b, ok := result.Bindings.Get("F")
	require.True(t, ok)
	assert.Equal(t, "Toggle", b.Description)
}

func TestParse_EscapedHash(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		title       string
		description string
	}{
		{"escaped hash in command", "bind = SUPER, C, exec, hyprpicker ## picker # [Picker] Pick color", "Picker", "Pick color"},
		{"escaped hash at end of command", "bind = SUPER, C, exec, echo ### [Picker] Pick color", "Picker", "Pick color"},
		{"escaped hash in description", "bind = SUPER, C, exec, hyprpicker # [Picker] Pick ## color", "Picker", "Pick ## color"},
		{"no spaces", "bind=SUPER,C,exec,a##b#[Picker]Pick", "Picker", "Pick"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse(tt.line, DefaultOptions())

			b, ok := result.Bindings.Get("C")
			require.True(t, ok)
			assert.Equal(t, tt.title, b.Title)
			assert.Equal(t, tt.description, b.Description)
		})
	}
}

func TestParse_EscapedHashOnlyHasNoComment(t *testing.T) {
	result := Parse("bind = SUPER, C, exec, hyprpicker ## [Picker] Pick color", DefaultOptions())

	assert.True(t, result.Empty())
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		body    string
		comment string
		found   bool
	}{
		{"no hash", "SUPER, Q, exec, a", "SUPER, Q, exec, a", "", false},
		{"comment", "exec, a # note", "exec, a ", " note", true},
		{"escaped only", "exec, a ## b", "exec, a # b", "", false},
		{"escaped then comment", "a ## b # c", "a # b ", " c", true},
		{"triple hash", "a ### c", "a #", " c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, comment, found := splitComment(tt.input)

			assert.Equal(t, tt.body, body)
			assert.Equal(t, tt.comment, comment)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestParse_AliasValueKeepsEscapedHash(t *testing.T) {
	result := Parse("$mainMod = SUPER ## odd # main modifier", DefaultOptions())

	assert.Equal(t, "SUPER # odd", result.Modifier)
}

func TestParseFile_Missing(t *testing.T) {
	result := ParseFile(filepath.Join(t.TempDir(), "missing.conf"), DefaultOptions())

	assert.True(t, result.Empty())
	assert.Equal(t, DefaultModifier, result.Modifier)
}

func TestParseFile_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	content := append([]byte("$mainMod = ALT\nbind = ALT, Q, exec, a # [Q] q\n"), 0xff, 0xfe)
	require.NoError(t, os.WriteFile(path, content, 0644))

	result := ParseFile(path, DefaultOptions())

	assert.True(t, result.Empty())
	assert.Equal(t, DefaultModifier, result.Modifier)
}

func TestParseFile_Reads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	require.NoError(t, os.WriteFile(path, []byte("bind = SUPER, return, exec, kitty # [Terminal] Open\n"), 0644))

	result := ParseFile(path, DefaultOptions())

	assert.True(t, result.Bindings.Has(domain.SymbolEnter))
}

func TestReadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.conf")
	require.NoError(t, os.WriteFile(badPath, []byte{0xff, 0xfe}, 0644))

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing.conf")},
		{"directory", dir},
		{"invalid utf8", badPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readConfig(tt.path)
			require.ErrorIs(t, err, domain.ErrConfigUnreadable)
		})
	}
}

func TestReadConfig_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hyprland.conf")
	require.NoError(t, os.WriteFile(path, []byte("$mainMod = ALT\n"), 0644))

	text, err := readConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "$mainMod = ALT\n", text)
}

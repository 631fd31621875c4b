// pkg/markup/markup_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Exact output and error behavior of the markup engine

package markup_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/mint/pkg/errors"
	"github.com/arthur-debert/mint/pkg/markup"
	"github.com/arthur-debert/mint/pkg/textutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	withCodes = markup.Options{EmitCodes: true}
	withRGB   = markup.Options{EmitCodes: true, TrueColor: true}
	plain     = markup.Options{}
)

func TestConvert_Attributes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold", "[!]bold text[/]", "\x1b[0;1mbold text\x1b[0m"},
		{"underline", "[_]underlined text[/]", "\x1b[0;4munderlined text\x1b[0m"},
		{"italic", "[']italic text[/]", "\x1b[0;3mitalic text\x1b[0m"},
		{"dim", "[-]dim text[/]", "\x1b[0;2mdim text\x1b[0m"},
		{"reverse", "[^]reverse[/]", "\x1b[0;7mreverse\x1b[0m"},
		{"bold underline", "[!_]x[/]", "\x1b[0;1;4mx\x1b[0m"},
		{"bold dim", "[!-]x[/]", "\x1b[0;1;2mx\x1b[0m"},
		{"bold italic", "[!']x[/]", "\x1b[0;1;3mx\x1b[0m"},
		{"underline italic", "[_']x[/]", "\x1b[0;3;4mx\x1b[0m"},
		{"all text attributes", "[!-_'^]x[/]", "\x1b[0;1;2;3;4;7mx\x1b[0m"},
		{"order red bold", "[r!]x[/]", "\x1b[0;1;31mx\x1b[0m"},
		{"order mixed", "['_!]x[/]", "\x1b[0;1;3;4mx\x1b[0m"},
		{"order color first", "[y!_':b]x[/]", "\x1b[0;1;3;4;33;44mx\x1b[0m"},
		{"complex", "[!'_r:w]complex[/]", "\x1b[0;1;3;4;31;47mcomplex\x1b[0m"},
		{"reverse with colors", "[^y:k]x[/]", "\x1b[0;7;33;40mx\x1b[0m"},
		{"whitespace between specifiers", "[ ! r\t:b ]x[/]", "\x1b[0;1;31;44mx\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Convert(tt.input, withCodes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvert_BasicColors(t *testing.T) {
	fg := map[string]string{
		"d": "39", "k": "30", "r": "31", "g": "32", "y": "33",
		"b": "34", "m": "35", "c": "36", "w": "37",
	}
	bright := map[string]string{
		"d": "99", "k": "90", "r": "91", "g": "92", "y": "93",
		"b": "94", "m": "95", "c": "96", "w": "97",
	}
	bg := map[string]string{
		"d": "49", "k": "40", "r": "41", "g": "42", "y": "43",
		"b": "44", "m": "45", "c": "46", "w": "47",
	}

	for letter, code := range fg {
		t.Run("fg "+letter, func(t *testing.T) {
			got, err := markup.Convert("["+letter+"]x[/]", withCodes)
			require.NoError(t, err)
			assert.Equal(t, "\x1b[0;"+code+"mx\x1b[0m", got)
		})
	}

	for letter, code := range bright {
		t.Run("bright fg "+letter, func(t *testing.T) {
			got, err := markup.Convert("[*"+letter+"]x[/]", withCodes)
			require.NoError(t, err)
			assert.Equal(t, "\x1b[0;"+code+"mx\x1b[0m", got)
		})
	}

	for letter, code := range bg {
		t.Run("bg "+letter, func(t *testing.T) {
			got, err := markup.Convert("[:"+letter+"]x[/]", withCodes)
			require.NoError(t, err)
			assert.Equal(t, "\x1b[0;"+code+"mx\x1b[0m", got)
		})
	}

	t.Run("bright alone emits no color", func(t *testing.T) {
		got, err := markup.Convert("[*]bright alone[/]", withCodes)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0mbright alone\x1b[0m", got)
	})

	t.Run("bright does not affect background", func(t *testing.T) {
		got, err := markup.Convert("[*:r]bright bg[/]", withCodes)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0;41mbright bg\x1b[0m", got)
	})

	t.Run("bright bold cyan", func(t *testing.T) {
		got, err := markup.Convert("[*!c]x[/]", withCodes)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0;1;96mx\x1b[0m", got)
	})
}

func TestConvert_Text(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "no tags here", "no tags here"},
		{"empty string", "", ""},
		{"empty tagged content", "[r][/]", "\x1b[0;31m\x1b[0m"},
		{"surrounding text", "before [r]red[/] after", "before \x1b[0;31mred\x1b[0m after"},
		{"separate tags", "[r]red[/] and [b]blue[/]", "\x1b[0;31mred\x1b[0m and \x1b[0;34mblue\x1b[0m"},
		{"escaped backslash", `\\`, `\`},
		{"escaped bracket", `\[`, "["},
		{"escape in text", `Use \[r] for red`, "Use [r] for red"},
		{"closing bracket is literal", "a]b", "a]b"},
		{"multibyte text", "[g]héllo ✓[/]", "\x1b[0;32mhéllo ✓\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Convert(tt.input, withCodes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvert_Nesting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"bold in red",
			"[r]red [!]and bold[/][/]",
			"\x1b[0;31mred \x1b[0;1;31mand bold\x1b[0;31m\x1b[0m",
		},
		{
			"red in bold",
			"[!]bold [r]and red[/][/]",
			"\x1b[0;1mbold \x1b[0;1;31mand red\x1b[0;1m\x1b[0m",
		},
		{
			"underline in italic",
			"[']italic [_]and underline[/][/]",
			"\x1b[0;3mitalic \x1b[0;3;4mand underline\x1b[0;3m\x1b[0m",
		},
		{
			"bg in fg",
			"[r]red [:b]on blue[/][/]",
			"\x1b[0;31mred \x1b[0;31;44mon blue\x1b[0;31m\x1b[0m",
		},
		{
			"fg in bg",
			"[:b]blue bg [y]yellow text[/][/]",
			"\x1b[0;44mblue bg \x1b[0;33;44myellow text\x1b[0;44m\x1b[0m",
		},
		{
			"three levels",
			"[r]red [!]bold [_]underline[/][/][/]",
			"\x1b[0;31mred \x1b[0;1;31mbold \x1b[0;1;4;31munderline\x1b[0;1;31m\x1b[0;31m\x1b[0m",
		},
		{
			"bright in color",
			"[r]red [*]bright[/][/]",
			"\x1b[0;31mred \x1b[0;91mbright\x1b[0;31m\x1b[0m",
		},
		{
			"color in bright",
			"[*r]bright red [g]green[/][/]",
			"\x1b[0;91mbright red \x1b[0;92mgreen\x1b[0;91m\x1b[0m",
		},
		{
			"four levels",
			"[!]b [_]u [']i [r]r[/][/][/][/]",
			"\x1b[0;1mb \x1b[0;1;4mu \x1b[0;1;3;4mi \x1b[0;1;3;4;31mr\x1b[0;1;3;4m\x1b[0;1;4m\x1b[0;1m\x1b[0m",
		},
		{
			"text between",
			"[r]start [!]middle[/] end[/]",
			"\x1b[0;31mstart \x1b[0;1;31mmiddle\x1b[0;31m end\x1b[0m",
		},
		{
			"same attribute",
			"[!]bold [!]still bold[/][/]",
			"\x1b[0;1mbold \x1b[0;1mstill bold\x1b[0;1m\x1b[0m",
		},
		{
			"colors replace",
			"[r]red [g]green [b]blue[/][/][/]",
			"\x1b[0;31mred \x1b[0;32mgreen \x1b[0;34mblue\x1b[0;32m\x1b[0;31m\x1b[0m",
		},
		{
			"backgrounds replace",
			"[:r]red bg [:b]blue bg[/][/]",
			"\x1b[0;41mred bg \x1b[0;44mblue bg\x1b[0;41m\x1b[0m",
		},
		{
			"consecutive",
			"[!][_][']text[/][/][/]",
			"\x1b[0;1m\x1b[0;1;4m\x1b[0;1;3;4mtext\x1b[0;1;4m\x1b[0;1m\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Convert(tt.input, withCodes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvert_InheritanceIsAdditive(t *testing.T) {
	got, err := markup.Convert("[!][r]X[/][/]", withCodes)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[0;1m\x1b[0;1;31mX\x1b[0;1m\x1b[0m", got)
}

func TestConvert_MultiLevelClose(t *testing.T) {
	t.Run("three slashes close three levels", func(t *testing.T) {
		got, err := markup.Convert("[!][_][^]X[///]", withCodes)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0;1m\x1b[0;1;4m\x1b[0;1;4;7mX"+markup.Frame{}.SGR(false), got)
		assert.Equal(t, "\x1b[0m", markup.Frame{}.SGR(false))
	})

	t.Run("partial close restores the outer frame", func(t *testing.T) {
		got, err := markup.Convert("[r]a[!]b[_]c[//]d[/]", withCodes)
		require.NoError(t, err)
		assert.Equal(t, "\x1b[0;31ma\x1b[0;1;31mb\x1b[0;1;4;31mc\x1b[0;31md\x1b[0m", got)
	})
}

func TestConvert_DepthLimit(t *testing.T) {
	t.Run("four levels succeed", func(t *testing.T) {
		_, err := markup.Convert("[r][g][b][y]text[////]", withCodes)
		assert.NoError(t, err)
	})

	t.Run("fifth level fails", func(t *testing.T) {
		_, err := markup.Convert("[r][g][b][y][m]text[/////]", withCodes)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNestingTooDeep))
	})
}

func TestConvert_TrueColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rgb   string
		basic string
	}{
		{
			"foreground",
			"[#ff8700]x[/]",
			"\x1b[0;38;2;255;135;0mx\x1b[0m",
			"\x1b[0mx\x1b[0m",
		},
		{
			"background mixed case",
			"[:#0A0b0C]x[/]",
			"\x1b[0;48;2;10;11;12mx\x1b[0m",
			"\x1b[0mx\x1b[0m",
		},
		{
			"bright ignored for rgb",
			"[*#ff0000]x[/]",
			"\x1b[0;38;2;255;0;0mx\x1b[0m",
			"\x1b[0mx\x1b[0m",
		},
		{
			"rgb after letter keeps the letter as fallback",
			"[r#00ff00]x[/]",
			"\x1b[0;38;2;0;255;0mx\x1b[0m",
			"\x1b[0;31mx\x1b[0m",
		},
		{
			"letter after rgb wins",
			"[#00ff00r]x[/]",
			"\x1b[0;31mx\x1b[0m",
			"\x1b[0;31mx\x1b[0m",
		},
		{
			"inherited letter is the fallback",
			"[r][#00ff00]x[/][/]",
			"\x1b[0;31m\x1b[0;38;2;0;255;0mx\x1b[0;31m\x1b[0m",
			"\x1b[0;31m\x1b[0;31mx\x1b[0;31m\x1b[0m",
		},
		{
			"rgb is inherited",
			"[#010203][!]x[/][/]",
			"\x1b[0;38;2;1;2;3m\x1b[0;1;38;2;1;2;3mx\x1b[0;38;2;1;2;3m\x1b[0m",
			"\x1b[0m\x1b[0;1mx\x1b[0m\x1b[0m",
		},
		{
			"both channels",
			"[#ffffff:#000000]x[/]",
			"\x1b[0;38;2;255;255;255;48;2;0;0;0mx\x1b[0m",
			"\x1b[0mx\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := markup.Convert(tt.input, withRGB)
			require.NoError(t, err)
			assert.Equal(t, tt.rgb, got)

			got, err = markup.Convert(tt.input, withCodes)
			require.NoError(t, err)
			assert.Equal(t, tt.basic, got)
		})
	}
}

func TestConvert_CodesDisabled(t *testing.T) {
	t.Run("tags are removed", func(t *testing.T) {
		got, err := markup.Convert(`[!r]a[/] \[b] \\ [#123456:w]c[/]`, plain)
		require.NoError(t, err)
		assert.Equal(t, `a [b] \ c`, got)
	})

	t.Run("literal round trip", func(t *testing.T) {
		got, err := markup.Convert(`a \[ b \\ c`, plain)
		require.NoError(t, err)
		assert.Equal(t, `a [ b \ c`, got)
	})

	t.Run("syntax is still checked", func(t *testing.T) {
		_, err := markup.Convert("[!]X", plain)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnbalancedOpenTag))
	})
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    errors.ErrorCode
		message string
		offset  int
	}{
		{"empty opening tag", "[]", errors.ErrEmptyOpenTag, "Empty opening tag", 0},
		{"blank opening tag", "ab[  ]", errors.ErrEmptyOpenTag, "Empty opening tag", 2},
		{"lone bracket", "[", errors.ErrUnterminatedOpenTag, "Expecting `]` to terminate the opening tag", 0},
		{"unclosed opening tag", "[r", errors.ErrUnterminatedOpenTag, "Expecting `]` to terminate the opening tag", 0},
		{"missing background color", "[:", errors.ErrExpectingColor, "Expecting color letter", 2},
		{"unknown color", "[x]text[/]", errors.ErrUnknownColor, "Unknown color letter `x`", 1},
		{"unknown background color", "[:x]text[/]", errors.ErrUnknownColor, "Unknown color letter `x`", 2},
		{"unknown multibyte color", "[é]", errors.ErrUnknownColor, "Unknown color letter `é`", 1},
		{"short hex", "[#12]x[/]", errors.ErrInvalidHexColor, "Expecting six hexadecimal digits after `#`", 1},
		{"truncated hex", "[#12345", errors.ErrInvalidHexColor, "Expecting six hexadecimal digits after `#`", 1},
		{"non hex digit", "[#12345g]x[/]", errors.ErrInvalidHexColor, "Expecting six hexadecimal digits after `#`", 1},
		{"hex then end", "[#123456", errors.ErrUnterminatedOpenTag, "Expecting `]` to terminate the opening tag", 0},
		{"incomplete escape", `text\`, errors.ErrIncompleteEscape, "Incomplete escape sequence at end of string", 4},
		{"invalid escape", `\a`, errors.ErrInvalidEscape, "Invalid escape sequence", 0},
		{"unbalanced closing tag", "X[/]", errors.ErrUnbalancedCloseTag, "Unbalanced closing tag", 1},
		{"extra closing tag", "[r]text[/] xyz [/] meow", errors.ErrUnbalancedCloseTag, "Unbalanced closing tag", 15},
		{"closing too many levels", "[r]x[//]", errors.ErrUnbalancedCloseTag, "Unbalanced closing tag", 4},
		{"closing tag without bracket", "[/x", errors.ErrUnterminatedCloseTag, "Expecting `]` after `[/`", 2},
		{"closing tag at end", "[r]x[//", errors.ErrUnterminatedCloseTag, "Expecting `]` after `[/`", 7},
		{"unbalanced opening tag", "[!]X", errors.ErrUnbalancedOpenTag, "Unbalanced opening tag", 4},
		{"unbalanced nested opening tag", "[r]text [!]more", errors.ErrUnbalancedOpenTag, "Unbalanced opening tag", 15},
		{"nesting too deep", "[r][g][b][y][m][c]text[/][/][/][/][/][/]", errors.ErrNestingTooDeep, "Maximum nesting depth exceeded", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, opts := range []markup.Options{withCodes, withRGB, plain} {
				got, err := markup.Convert(tt.input, opts)
				require.Error(t, err)
				assert.Empty(t, got)

				var mintErr *errors.MintError
				require.ErrorAs(t, err, &mintErr)
				assert.Equal(t, tt.code, mintErr.Code)
				assert.Equal(t, tt.message, mintErr.Message)
				assert.Equal(t, tt.offset, mintErr.Details["offset"])
				assert.True(t, errors.IsSyntaxError(err))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, markup.Validate("[!]ok[/]"))
	assert.True(t, errors.IsErrorCode(markup.Validate("[!]X"), errors.ErrUnbalancedOpenTag))
	assert.True(t, errors.IsErrorCode(markup.Validate("X[/]"), errors.ErrUnbalancedCloseTag))
}

func TestConvert_StripMatchesPlain(t *testing.T) {
	inputs := []string{
		"[!]bold text[/]",
		"[r]red [!]bold [_]underline[/] back[/] normal[/]",
		"[!-_'*r:b]complex[/]",
		`before [y]yellow[/] after \[literal]`,
		"[#ff0000:#00ff00]rgb[/] [^]rev[/]",
		"",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			styled, err := markup.Convert(input, withRGB)
			require.NoError(t, err)
			unstyled, err := markup.Convert(input, plain)
			require.NoError(t, err)

			assert.Equal(t, textutil.StripANSI(unstyled), textutil.StripANSI(styled))
			assert.Equal(t, unstyled, textutil.StripANSI(styled))
		})
	}
}

func TestConvert_Concurrent(t *testing.T) {
	const input = "[!r]a [_:b]b[/] c[/]"
	want, err := markup.Convert(input, withCodes)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = markup.Convert(input, withCodes)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

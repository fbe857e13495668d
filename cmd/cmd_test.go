package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devRabbiz/waveboxapp/internal/config"
	"github.com/devRabbiz/waveboxapp/internal/host"
	"github.com/devRabbiz/waveboxapp/pkg/clipboard"
	"github.com/devRabbiz/waveboxapp/pkg/contextmenu"
	"github.com/devRabbiz/waveboxapp/tui"
)

func setup(t *testing.T) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	viper.Reset()
	t.Cleanup(viper.Reset)
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTemplateText(t *testing.T) {
	setup(t)

	out, err := execute(t, templateCmd(),
		"--link", "https://wavebox.io",
		"--can-undo", "--can-paste")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, contextmenu.LabelOpenLink+"\n"), out)
	assert.Contains(t, out, "Undo [undo]\n")
	assert.Contains(t, out, "Redo [redo] (disabled)\n")
	assert.Contains(t, out, "Paste and match style [pasteAndMatchStyle]\n")
	assert.True(t, strings.HasSuffix(out, "Wavebox Settings\nInspect\n"), out)
}

func TestTemplateJSON(t *testing.T) {
	setup(t)

	out, err := execute(t, templateCmd(), "--format", "json", "--x", "3", "--y", "4")
	require.NoError(t, err)

	var descriptions []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &descriptions))
	assert.Len(t, descriptions, 2)

	assert.Contains(t, out, `"kind": "inspect-element"`)
	assert.Contains(t, out, `"x": 3`)
}

func TestTemplateUnknownFormat(t *testing.T) {
	setup(t)

	_, err := execute(t, templateCmd(), "--format", "yaml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestTemplateFromContextFile(t *testing.T) {
	setup(t)

	path := filepath.Join(t.TempDir(), "ctx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"selectionText":"golang","editFlags":{"canCopy":true}}`), 0644))

	out, err := execute(t, templateCmd(), "--context", path)
	require.NoError(t, err)

	assert.Contains(t, out, `Search Google for "golang"`)
	assert.Contains(t, out, "Copy [copy]")
}

func TestTemplateFeatureConfig(t *testing.T) {
	setup(t)
	viper.Set(config.CopyCurrentPageURLKey, true)

	out, err := execute(t, templateCmd())
	require.NoError(t, err)

	assert.Equal(t, "Copy current URL\n────\nWavebox Settings\nInspect\n", out)
}

func TestTemplateWithDictionaries(t *testing.T) {
	setup(t)

	dicts := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dicts, "en_US.dic"), []byte("the\nten\n"), 0644))

	viper.Set(config.SpellcheckPrimaryKey, "en_US")
	viper.Set(config.DictionariesKey, dicts)
	viper.Set(config.StorageKey, t.TempDir())

	out, err := execute(t, templateCmd(), "--editable", "--misspelled", "teh")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "ten\nthe\n────\n"), out)
}

func TestShowSendsOpenSettings(t *testing.T) {
	setup(t)

	var stdout, stderr bytes.Buffer
	cmd := showCmd()
	cmd.SetIn(strings.NewReader("\r"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, `{"type":"open-settings"}`+"\n", stdout.String())
	assert.Contains(t, stderr.String(), "Performed open-settings\n")
}

func TestTemplateMarkdown(t *testing.T) {
	setup(t)

	out, err := execute(t, templateCmd(),
		"--format", "markdown",
		"--width", "80",
		"--link", "https://wavebox.io")
	require.NoError(t, err)

	for _, label := range []string{contextmenu.LabelOpenLink, contextmenu.LabelSettings, contextmenu.LabelInspect} {
		assert.Contains(t, out, label)
	}
}

func TestReadInteraction(t *testing.T) {
	t.Parallel()

	ctx, err := readInteraction(strings.NewReader(`{"isEditable":true,"misspelledWord":"teh","position":{"x":1,"y":2}}`), "-")
	require.NoError(t, err)

	assert.True(t, ctx.HasMisspelling())
	assert.Equal(t, contextmenu.Position{X: 1, Y: 2}, ctx.Position)

	_, err = readInteraction(strings.NewReader("{"), "-")
	assert.Error(t, err)
}

func TestPresentOnce(t *testing.T) {
	t.Parallel()

	ctx := contextmenu.InteractionContext{IsEditable: true, MisspelledWord: "teh", SelectionText: "cat"}
	doc := newDocument(ctx, "https://wavebox.io", "", &clipboard.Memory{})

	assert.Equal(t, "teh cat", doc.Text())
	assert.Equal(t, "cat", doc.Selection())

	tmpl := presentOnce(doc, contextmenu.NewBuilder(contextmenu.FeatureConfig{}), ctx)
	assert.Zero(t, doc.Subscribers())
	_, ok := tmpl.Find(`Search Google for "cat"`)
	assert.True(t, ok)
}

func TestReport(t *testing.T) {
	t.Parallel()

	doc := host.NewDocument("", "teh", nil)
	doc.SetMisspelled("teh")
	require.NoError(t, doc.ReplaceMisspelling("the"))

	var out bytes.Buffer
	require.NoError(t, report(&out, tui.Result{Activated: true, Action: contextmenu.ReplaceMisspellingMsg{Suggestion: "the"}}, doc, "teh"))
	assert.Equal(t, "Performed replace-misspelling\nText: the\n", out.String())

	out.Reset()
	require.NoError(t, report(&out, tui.Result{}, doc, "the"))
	assert.Equal(t, "Menu closed\n", out.String())

	assert.Error(t, report(&out, tui.Result{Activated: true, Action: contextmenu.OpenSettingsMsg{}, Err: assert.AnError}, doc, "the"))
}

func TestConfigFlags(t *testing.T) {
	setup(t)

	_, err := config.InitialiseConfigFile()
	require.NoError(t, err)

	out, err := execute(t, configCmd(), "--primary", "en_GB", "--copy-current-url")
	require.NoError(t, err)

	assert.Contains(t, out, "spellcheck.primary set to: en_GB")
	assert.Contains(t, out, "copy_current_page_url_option set to: true")

	primary, _ := config.SpellcheckLanguages()
	assert.Equal(t, "en_GB", primary)
	assert.True(t, config.Features().CopyCurrentPageURLOption)
}

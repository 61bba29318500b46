package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Template names rendered by the pipeline stages.
const (
	AnalysisHooks      = "analysis/hooks.tmpl"
	AnalysisFormats    = "analysis/formats.tmpl"
	AnalysisEngagement = "analysis/engagement.tmpl"
	AnalysisThemes     = "analysis/themes.tmpl"
	AnalysisSummary    = "analysis/summary.tmpl"
	ScriptHook         = "script/hook.tmpl"
	ScriptBody         = "script/body.tmpl"
	ScriptCTA          = "script/cta.tmpl"
	VisualPlan         = "visual/plan.tmpl"
)

//go:embed templates
var embedded embed.FS

// Manager handles loading and rendering of prompt templates.
type Manager struct {
	root *template.Template
}

// NewManager loads the embedded templates, then any *.tmpl under dir, which
// replace embedded templates of the same name. An empty dir uses the
// embedded set only.
func NewManager(dir string) (*Manager, error) {
	m := &Manager{}
	m.root = template.New("root").Funcs(template.FuncMap{
		"niche":     m.nicheFunc,
		"bullets":   bulletsFunc,
		"join":      strings.Join,
		"thousands": thousandsFunc,
		"orNA":      orNAFunc,
	})

	base, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	if err := m.load(base); err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("prompt dir: %w", err)
		}
		if err := m.load(os.DirFS(dir)); err != nil {
			return nil, fmt.Errorf("loading templates from %s: %w", dir, err)
		}
	}

	return m, nil
}

// load parses common/ first so later templates can reference its defines.
func (m *Manager) load(fsys fs.FS) error {
	if err := m.walk(fsys, "common", func(name, content string) error {
		_, err := m.root.Parse(content)
		return err
	}); err != nil {
		return err
	}
	return m.walk(fsys, ".", func(name, content string) error {
		if strings.HasPrefix(name, "common/") {
			return nil
		}
		_, err := m.root.New(name).Parse(content)
		return err
	})
}

func (m *Manager) walk(fsys fs.FS, root string, fn func(name, content string) error) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || path.Ext(p) != ".tmpl" {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := fn(p, string(content)); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		return nil
	})
}

// Render executes the named template with the provided data.
func (m *Manager) Render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.root.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// nicheFunc renders niche/<name>.tmpl when it exists. Spaces in the niche
// become underscores.
func (m *Manager) nicheFunc(name string, data any) (string, error) {
	if name == "" {
		return "", nil
	}

	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	t := m.root.Lookup("niche/" + key + ".tmpl")
	if t == nil {
		return "", nil
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func bulletsFunc(items []string) string {
	if len(items) == 0 {
		return "- N/A"
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

var printer = message.NewPrinter(language.English)

func thousandsFunc(n any) string {
	switch v := n.(type) {
	case float64:
		return printer.Sprintf("%.0f", v)
	default:
		return printer.Sprintf("%d", v)
	}
}

func orNAFunc(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

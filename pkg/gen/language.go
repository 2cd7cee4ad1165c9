package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"c2e-dev/c2e/pkg/codec/format"
)

// manifestName is the language pack manifest file inside each language
// directory under the template dir.
const manifestName = "lang.yaml"

// FileTemplate names one output file template of a language pack. Template
// is resolved relative to the pack directory, Output relative to the
// driver's output directory for the language.
type FileTemplate struct {
	Template string `yaml:"template"`
	Output   string `yaml:"output"`
}

// Language is a loaded language pack: everything needed to turn compiled
// codecs into source files for one output language.
type Language struct {
	// Name identifies the language (directory name by default).
	Name string `yaml:"name"`

	// Templates is the formatter template mapping, keyed by dispatch key.
	Templates map[string]string `yaml:"templates"`

	// Escapes maps characters of constant emitter literals to their
	// escaped spelling in this language. Unlisted characters pass through.
	Escapes map[string]string `yaml:"escapes"`

	// Codec is the per-codec wrapper template. Placeholders: {target}
	// (codec target name), {chain} (rendered rule chain), {emitters}
	// (concatenated rendered user-defined emitter wrappers).
	Codec string `yaml:"codec"`

	// Emitter is the wrapper template for one user-defined emitter.
	// Placeholders: {name}, {body}. Optional; without it user-defined
	// emitters are rendered inline only.
	Emitter string `yaml:"emitter"`

	// Files lists the pack's output file templates.
	Files []FileTemplate `yaml:"files"`

	dir string
}

// LoadLanguage reads the language pack manifest under dir.
func LoadLanguage(dir string) (*Language, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, fmt.Errorf("loading language pack %s: %w", dir, err)
	}

	var lang Language
	if err := yaml.Unmarshal(data, &lang); err != nil {
		return nil, fmt.Errorf("language pack manifest %s: %w", filepath.Join(dir, manifestName), err)
	}
	if lang.Name == "" {
		lang.Name = filepath.Base(dir)
	}
	if len(lang.Templates) == 0 {
		return nil, fmt.Errorf("language pack %q defines no templates", lang.Name)
	}
	if lang.Codec == "" {
		return nil, fmt.Errorf("language pack %q defines no codec wrapper template", lang.Name)
	}
	lang.dir = dir
	return &lang, nil
}

// DiscoverLanguages loads every language pack under templateDir, sorted by
// name.
func DiscoverLanguages(templateDir string) ([]*Language, error) {
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return nil, fmt.Errorf("reading template dir: %w", err)
	}

	var langs []*Language
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(templateDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, manifestName)); err != nil {
			continue
		}
		lang, err := LoadLanguage(dir)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs, nil
}

// FormatTemplates converts the manifest's template mapping to the
// formatter's typed key space.
func (l *Language) FormatTemplates() format.Templates {
	templates := make(format.Templates, len(l.Templates))
	for k, v := range l.Templates {
		templates[format.Key(k)] = v
	}
	return templates
}

// EscapeFunc builds the formatter escape function from the pack's escape
// table.
func (l *Language) EscapeFunc() format.EscapeFunc {
	table := make(map[rune]string, len(l.Escapes))
	for k, v := range l.Escapes {
		for _, r := range k {
			table[r] = v
			break
		}
	}
	return func(r rune) string {
		if esc, ok := table[r]; ok {
			return esc
		}
		return string(r)
	}
}

// TemplatePath resolves a file template path within the pack directory.
func (l *Language) TemplatePath(ft FileTemplate) string {
	return filepath.Join(l.dir, ft.Template)
}

package language

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// templatesFS carries every language bundle into the binary: one directory
// per language holding stub_config.yaml plus the command templates.
//
//go:embed templates
var templatesFS embed.FS

const (
	templatesRoot  = "templates"
	configFileName = "stub_config.yaml"
)

// ErrUnknownLanguage reports a requested language with no bundled
// configuration, neither by name nor by alias.
var ErrUnknownLanguage = errors.New("unsupported language")

// Find returns the configuration for a target language. The canonical name
// is tried first, then every bundle's alias list. Matching is
// case-insensitive.
func Find(name string) (*Language, error) {
	name = strings.ToLower(name)

	lang, err := load(name)
	if err == nil {
		return lang, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	names, err := Names()
	if err != nil {
		return nil, err
	}

	for _, candidate := range names {
		lang, err := load(candidate)
		if err != nil {
			continue
		}

		if slices.Contains(lang.Aliases, name) {
			return lang, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
}

// Names lists the bundled language names in sorted order.
func Names() ([]string, error) {
	entries, err := templatesFS.ReadDir(templatesRoot)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	slices.Sort(names)

	return names, nil
}

// TemplateSources returns the raw template files bundled for the language,
// keyed by file name.
func (l *Language) TemplateSources() (map[string]string, error) {
	dir := path.Join(templatesRoot, l.Name)

	entries, err := templatesFS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("no templates bundled for %s: %w", l.Name, err)
	}

	sources := make(map[string]string, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == configFileName {
			continue
		}

		raw, err := templatesFS.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}

		sources[entry.Name()] = string(raw)
	}

	return sources, nil
}

// load reads and decodes one bundle's stub_config.yaml.
func load(name string) (*Language, error) {
	raw, err := templatesFS.ReadFile(path.Join(templatesRoot, name, configFileName))
	if err != nil {
		return nil, err
	}

	lang := &Language{}
	if err := yaml.Unmarshal(raw, lang); err != nil {
		return nil, fmt.Errorf("malformed stub configuration for %s: %w", name, err)
	}

	return lang, nil
}

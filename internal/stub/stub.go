// Package stub turns stub-DSL definitions into target-language source
// skeletons. A definition describes a program's input/output contract with
// a handful of line-oriented commands; the generated code reads the inputs
// and prints the outputs in the requested language.
package stub

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/pacer/stubgen/internal/stub/language"
	"github.com/pacer/stubgen/internal/stub/lexer"
	"github.com/pacer/stubgen/internal/stub/parser"
	"github.com/pacer/stubgen/internal/stub/renderer"
)

// Generate renders the stub definition in source for the given language
// name or alias. The first configuration, parse or render failure comes
// back as the error, with nothing generated.
func Generate(source []byte, langName string) (string, error) {
	lang, err := language.Find(langName)
	if err != nil {
		return "", err
	}

	return generate(lang, source)
}

// Check parses the stub definition without rendering anything, so
// definitions can be validated independently of any target language.
func Check(source []byte) (*parser.Stub, error) {
	parsed, perr := parser.Parse(lexer.Tokenize(source))
	if perr != nil {
		return nil, perr
	}

	return parsed, nil
}

func generate(lang *language.Language, source []byte) (string, error) {
	parsed, perr := parser.Parse(lexer.Tokenize(source))
	if perr != nil {
		return "", perr
	}

	return renderer.Render(lang, parsed)
}

// generateResult holds the outcome for a single file.
type generateResult struct {
	fileName string
	output   string
	err      error
}

// GenerateFiles renders many stub definitions for one language in parallel,
// bounded by GOMAXPROCS. The returned map holds the generated source for
// every definition that succeeded, keyed like sources; failures come back
// in the error slice, wrapped with their file name, without blocking the
// rest. The map is never nil.
func GenerateFiles(sources map[string][]byte, langName string) (map[string]string, []error) {
	outputs := make(map[string]string, len(sources))

	if len(sources) == 0 {
		return outputs, nil
	}

	lang, err := language.Find(langName)
	if err != nil {
		return outputs, []error{err}
	}

	numWorkers := min(runtime.GOMAXPROCS(0), len(sources))

	results := make(chan generateResult, len(sources))

	// Use a semaphore to limit concurrency
	sem := make(chan struct{}, numWorkers)

	var wg sync.WaitGroup
	for fileName, source := range sources {
		wg.Add(1)
		go func(fileName string, source []byte) {
			defer wg.Done()

			// Acquire semaphore
			sem <- struct{}{}
			defer func() { <-sem }()

			output, err := generate(lang, source)
			if err != nil {
				err = fmt.Errorf("%s: %w", fileName, err)
			}

			results <- generateResult{fileName: fileName, output: output, err: err}
		}(fileName, source)
	}

	// Close results channel when all goroutines complete
	go func() {
		wg.Wait()
		close(results)
	}()

	var errs []error
	for result := range results {
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}

		outputs[result.fileName] = result.output
	}

	return outputs, errs
}

// OutputFileName maps a stub definition path to its generated source path,
// swapping the extension for the language's.
func OutputFileName(inputPath string, lang *language.Language) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))

	return base + "." + lang.SourceFileExt
}

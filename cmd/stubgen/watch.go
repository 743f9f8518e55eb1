package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pacer/stubgen/internal/stub"
	"github.com/pacer/stubgen/internal/stub/language"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <language> <file>",
	Short: "Regenerate a stub whenever its definition changes",
	Long: `Watches a stub definition file and regenerates the target-language source
next to it on every change, until interrupted. Bursts of filesystem events
are debounced so editors that save in several steps trigger one
regeneration.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before regenerating after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	langName := args[0]
	file := args[1]

	lang, err := language.Find(langName)
	if err != nil {
		return err
	}

	regenerate := func() {
		source, err := os.ReadFile(file)
		if err != nil {
			logger.Error("cannot read stub definition", zap.String("file", file), zap.Error(err))
			return
		}

		output, err := stub.Generate(source, langName)
		if err != nil {
			logger.Error("generation failed", zap.String("file", file), zap.Error(err))
			return
		}

		target := stub.OutputFileName(file, lang)
		if err := os.WriteFile(target, []byte(output), 0o644); err != nil {
			logger.Error("cannot write generated stub", zap.String("file", target), zap.Error(err))
			return
		}

		logger.Info("stub regenerated",
			zap.String("input", file),
			zap.String("output", target),
		)
	}

	// Render once up front so the output exists before the first change.
	regenerate()

	closer, err := watchFile(file, watchDebounce, regenerate)
	if err != nil {
		return err
	}
	defer closer()

	logger.Info("watching stub definition",
		zap.String("file", file),
		zap.String("language", lang.Name),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop

	return nil
}

// watchFile invokes onChange after events on the file settle for the
// debounce interval. The watch is installed on the parent directory, so
// editors that replace the file with a rename keep triggering. The returned
// closer stops the watch and waits for the event loop to drain.
func watchFile(file string, debounce time.Duration, onChange func()) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	target, err := filepath.Abs(file)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	stopCh := make(chan struct{})
	doneCh := make(chan struct{})

	go func() {
		defer close(doneCh)

		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)

		resetTimer := func() {
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
				return
			}

			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}

			timer.Reset(debounce)
			timerC = timer.C
		}

		for {
			select {
			case <-stopCh:
				if timer != nil {
					timer.Stop()
				}
				return

			case <-timerC:
				timerC = nil
				onChange()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", zap.Error(err))

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				name, err := filepath.Abs(event.Name)
				if err != nil || name != target {
					continue
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					resetTimer()
				}
			}
		}
	}()

	closer := func() {
		close(stopCh)
		_ = watcher.Close()
		<-doneCh
	}

	return closer, nil
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/capture"
	"github.com/wippyai/accesskit-go/tree"
)

func newWatchCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <capture-file>",
		Short: "Follow a capture file and print changes as they are written",
		Long: `Follow a capture file while an application runs. The file may not exist
yet; it is picked up when created. A recreated or truncated file restarts
the replay from an empty tree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runWatch(ctx, rootOpts, args[0], cmd.OutOrStdout())
		},
	}
}

func runWatch(ctx context.Context, opts *rootOptions, path string, w io.Writer) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// The capture log removes and recreates its file, so watch the
	// directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	f := newFollower(path, opts.Format, w)
	if err := f.poll(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != path {
				continue
			}
			opts.log.Debug("capture file event", zap.Stringer("op", ev.Op))
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				f.reset()
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				if err := f.poll(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			opts.log.Warn("watch error", zap.Error(err))
		}
	}
}

// follower replays a growing capture file incrementally. Only complete
// lines are consumed; a partial trailing line waits for the next poll.
type follower struct {
	path   string
	format string
	out    io.Writer

	offset int64
	lines  int
	record int
	state  *tree.State
}

func newFollower(path, format string, out io.Writer) *follower {
	return &follower{path: path, format: format, out: out, state: tree.NewState()}
}

func (f *follower) reset() {
	f.offset, f.lines, f.record = 0, 0, 0
	f.state = tree.NewState()
}

// poll reads whatever was appended since the last call. A missing file is
// not an error.
func (f *follower) poll() error {
	file, err := os.Open(f.path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() < f.offset {
		f.reset()
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil
	}
	chunk := data[:end+1]

	records, err := capture.NewReader(bytes.NewReader(chunk)).ReadAll()
	for _, rec := range records {
		rec.Line += f.lines
		if werr := f.emit(rec); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	f.offset += int64(len(chunk))
	f.lines += bytes.Count(chunk, []byte{'\n'})
	return nil
}

func (f *follower) emit(rec capture.Record) error {
	prev := f.state.Clone()
	f.state.Apply(rec.Update)
	f.record++
	d := diffStep{Record: f.record, Line: rec.Line, Delta: capture.Diff(prev, f.state)}

	switch f.format {
	case "json":
		return json.NewEncoder(f.out).Encode(d)
	case "yaml":
		if _, err := io.WriteString(f.out, "---\n"); err != nil {
			return err
		}
		return writeStructured(f.out, "yaml", d)
	}
	writeDiffText(f.out, d)
	return nil
}

// SPDX-License-Identifier: Unlicense OR MIT

// Command pointer-replay replays a newline-delimited JSON log of
// pointer event records through a dispatcher and prints a summary of
// the strokes it aggregates. It is a harness for inspecting recorded
// event streams without a windowing runtime.
//
//	pointer-replay [-config settings.toml] events.ndjson
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/openpointer/pointerevents/app"
	"github.com/openpointer/pointerevents/pointer"
	"github.com/openpointer/pointerevents/router"
	"github.com/openpointer/pointerevents/stroke"
)

var (
	configPath = flag.String("config", "", "optional TOML settings file")
	logger     = golog.Global().Named("pointer_replay")
)

type config struct {
	Recorder stroke.Settings `toml:"recorder"`
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		logger.Fatal("usage: pointer-replay [-config settings.toml] events.ndjson")
	}
	if err := runReplay(flag.Arg(0), *configPath); err != nil {
		logger.Fatal(err)
	}
}

func runReplay(logPath, configPath string) error {
	cfg := config{Recorder: stroke.DefaultSettings()}
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return errors.Wrap(err, "reading settings")
		}
	}

	events, err := readEvents(logPath)
	if err != nil {
		return err
	}
	logger.Infow("replaying events", "count", len(events))

	manager := router.NewManager(golog.Global())
	defer func() {
		if err := manager.Close(); err != nil {
			logger.Errorw("closing manager", "error", err)
		}
	}()
	window := app.NewVirtualWindow()
	ev, err := manager.EventsForWindow(window)
	if err != nil {
		return err
	}

	recorder := stroke.NewRecorder(cfg.Recorder)
	ev.RegisterListener(recorder, router.OrderAfterApp)

	var lastTimestamp uint64
	for i := range events {
		ev.OnPointer(window, &events[i])
		if ts := events[i].TimestampMicros; ts > lastTimestamp {
			lastTimestamp = ts
		}
	}
	recorder.Update(lastTimestamp)

	for pointerID, strokes := range recorder.Strokes() {
		for _, s := range strokes {
			logger.Infow("stroke",
				"pointer_id", pointerID,
				"events", s.Len(),
				"finished", s.IsFinished(),
				"cancelled", s.IsCancelled(),
				"expecting_updates", s.IsExpectingUpdates(),
				"duration_ms", (s.MaxTimestampMicros()-s.MinTimestampMicros())/1000,
			)
		}
	}
	return nil
}

// readEvents decodes one interchange record per line. Undecodable lines
// are skipped; their errors are combined and reported after the whole
// log has been read.
func readEvents(path string) ([]pointer.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening event log")
	}
	defer f.Close()

	var events []pointer.Event
	var decodeErrs error
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var e pointer.Event
		if err := json.Unmarshal(raw, &e); err != nil {
			decodeErrs = multierr.Append(decodeErrs, errors.Wrapf(err, "line %d", line))
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading event log")
	}
	if decodeErrs != nil {
		logger.Warnw("skipped undecodable records", "error", decodeErrs)
	}
	return events, nil
}

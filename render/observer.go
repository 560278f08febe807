package render

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/star"
)

// SnapshotObserver writes an SVG of the galaxy under construction every
// Every segments, after the last segment and after each stage. The first
// write error stops further output and is reported by Err.
type SnapshotObserver struct {
	log     *zap.Logger
	err     error
	dir     string
	table   star.Table
	written []string
	width   float64
	height  float64
	every   int
}

// NewSnapshotObserver writes into dir, which must exist. every < 1 means
// only stage snapshots are written.
func NewSnapshotObserver(dir string, every int, cfg galaxy.Config, log *zap.Logger) *SnapshotObserver {
	if log == nil {
		log = zap.NewNop()
	}

	return &SnapshotObserver{
		dir:    dir,
		every:  every,
		table:  cfg.Categories,
		width:  cfg.Width,
		height: cfg.Height,
		log:    log,
	}
}

// SegmentDone implements galaxy.Observer.
func (o *SnapshotObserver) SegmentDone(e galaxy.SegmentEvent) {
	if o.every < 1 {
		return
	}
	n := e.Segment.Index + 1
	if n%o.every != 0 && n != e.Total {
		return
	}
	o.write(fmt.Sprintf("segment-%04d.svg", e.Segment.Index), e.Workspace)
}

// StageDone implements galaxy.Observer.
func (o *SnapshotObserver) StageDone(e galaxy.StageEvent) {
	o.write("stage-"+e.Stage+".svg", e.Workspace)
}

// Written returns the paths written so far.
func (o *SnapshotObserver) Written() []string { return o.written }

// Err returns the first write error.
func (o *SnapshotObserver) Err() error { return o.err }

func (o *SnapshotObserver) write(name string, w *galaxy.Workspace) {
	if o.err != nil || w == nil {
		return
	}
	path := filepath.Join(o.dir, name)
	f, err := os.Create(path)
	if err != nil {
		o.err = fmt.Errorf("render: %w", err)
		return
	}
	err = SVG(f, FromWorkspace(w, o.width, o.height), o.table)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("render: close %s: %w", path, cerr)
	}
	if err != nil {
		o.err = err
		o.log.Warn("snapshot failed", zap.String("path", path), zap.Error(err))
		return
	}
	o.written = append(o.written, path)
	o.log.Debug("snapshot written", zap.String("path", path))
}

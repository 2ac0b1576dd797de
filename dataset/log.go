// Package dataset reads telemetry logs recorded by the rover simulator so perception can be
// replayed offline.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rover/referenceframe"
)

// Column names the simulator writes. Other columns such as SteerAngle or Throttle are ignored.
const (
	ColumnPath = "Path"
	ColumnX    = "X_Position"
	ColumnY    = "Y_Position"
	ColumnYaw  = "Yaw"
)

// DefaultComma is the simulator's field separator.
const DefaultComma = ';'

// Entry is one recorded camera frame and the pose it was captured from.
type Entry struct {
	ImagePath string
	Pose      referenceframe.Pose
}

// LogOptions control how a log is parsed.
type LogOptions struct {
	// Comma separates fields. Zero selects DefaultComma.
	Comma rune
	// BaseDir is joined to relative image paths.
	BaseDir string
}

// ReadLog parses a telemetry log. The first record must be a header naming at least the Path,
// X_Position, Y_Position and Yaw columns, in any order and any case.
func ReadLog(r io.Reader, opts LogOptions) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = DefaultComma
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("telemetry log is empty")
		}
		return nil, errors.Wrap(err, "cannot read telemetry header")
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "cannot read telemetry record")
		}
		line, _ := reader.FieldPos(0)
		entry, err := parseEntry(record, cols, opts.BaseDir)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ReadLogFile reads the log at path, resolving image paths relative to its directory.
func ReadLogFile(path string) (entries []Entry, err error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()
	return ReadLog(f, LogOptions{BaseDir: filepath.Dir(path)})
}

type columns struct {
	path, x, y, yaw int
}

func columnIndexes(header []string) (columns, error) {
	cols := columns{-1, -1, -1, -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(ColumnPath):
			cols.path = i
		case strings.ToLower(ColumnX):
			cols.x = i
		case strings.ToLower(ColumnY):
			cols.y = i
		case strings.ToLower(ColumnYaw):
			cols.yaw = i
		}
	}
	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{{ColumnPath, cols.path}, {ColumnX, cols.x}, {ColumnY, cols.y}, {ColumnYaw, cols.yaw}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) != 0 {
		return cols, errors.Errorf("telemetry header %q is missing columns %s", header, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseEntry(record []string, cols columns, baseDir string) (Entry, error) {
	parse := func(name string, idx int) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s", name)
		}
		return v, nil
	}
	x, err := parse(ColumnX, cols.x)
	if err != nil {
		return Entry{}, err
	}
	y, err := parse(ColumnY, cols.y)
	if err != nil {
		return Entry{}, err
	}
	yaw, err := parse(ColumnYaw, cols.yaw)
	if err != nil {
		return Entry{}, err
	}

	imgPath := strings.TrimSpace(record[cols.path])
	if imgPath == "" {
		return Entry{}, errors.New("empty image path")
	}
	if !filepath.IsAbs(imgPath) && baseDir != "" {
		imgPath = filepath.Join(baseDir, imgPath)
	}
	return Entry{ImagePath: imgPath, Pose: referenceframe.NewPose(x, y, yaw)}, nil
}

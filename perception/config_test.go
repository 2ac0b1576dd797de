package perception

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/rover/vision/terrain"
)

func TestConfigValidate(t *testing.T) {
	var cfg Config
	test.That(t, cfg.Validate("path"), test.ShouldBeNil)

	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	cfg = Config{SourcePoints: square}
	err := cfg.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must be set together")
	test.That(t, err.Error(), test.ShouldContainSubstring, "path")

	cfg = Config{SourcePoints: square, DestinationPoints: square[:3]}
	test.That(t, cfg.Validate("path").Error(), test.ShouldContainSubstring, "needs 4 points but has 3")

	cfg = Config{
		NavigableThreshold: &terrain.Thresholds{R: 300, G: 0, B: 0},
		RockThreshold:      &terrain.RockThresholds{MinRed: -2},
		WorldSize:          -5,
		Scale:              -1,
	}
	err = cfg.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	for _, want := range []string{"threshold", "rock threshold", "world_size", "scale"} {
		test.That(t, err.Error(), test.ShouldContainSubstring, want)
	}

	cfg = Config{NavigableThreshold: &terrain.UseDefaultThresholds}
	test.That(t, cfg.Validate("path"), test.ShouldBeNil)
}

func TestConfigDefaults(t *testing.T) {
	cfg := (&Config{NavigableThreshold: &terrain.UseDefaultThresholds}).withDefaults()
	test.That(t, *cfg.NavigableThreshold, test.ShouldResemble, terrain.DefaultThresholds)
	test.That(t, *cfg.RockThreshold, test.ShouldResemble, terrain.DefaultRockThresholds)
	test.That(t, cfg.WorldSize, test.ShouldEqual, 200)
	test.That(t, cfg.Scale, test.ShouldEqual, 10.0)

	src, dst := cfg.correspondence(320, 160)
	test.That(t, src, test.ShouldResemble, [4]r2.Point{{X: 120, Y: 95}, {X: 10, Y: 140}, {X: 310, Y: 140}, {X: 200, Y: 95}})
	test.That(t, dst, test.ShouldResemble, [4]r2.Point{{X: 155, Y: 150}, {X: 155, Y: 165}, {X: 165, Y: 165}, {X: 165, Y: 150}})

	// odd widths keep the half pixel
	_, dst = cfg.correspondence(321, 160)
	test.That(t, dst[0].X, test.ShouldEqual, 155.5)
}

func TestConfigFromAttributes(t *testing.T) {
	cfg, err := ConfigFromAttributes(map[string]interface{}{
		"navigable_threshold": map[string]interface{}{"r": 180, "g": 140, "b": "130"},
		"world_size":          "100",
		"scale":               5,
		"parallel_rows":       true,
		"source_points":       []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}, []interface{}{5, 6}, []interface{}{7, 9}},
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, *cfg.NavigableThreshold, test.ShouldResemble, terrain.Thresholds{R: 180, G: 140, B: 130})
	test.That(t, cfg.WorldSize, test.ShouldEqual, 100)
	test.That(t, cfg.Scale, test.ShouldEqual, 5.0)
	test.That(t, cfg.ParallelRows, test.ShouldBeTrue)
	test.That(t, cfg.SourcePoints[3], test.ShouldResemble, [2]float64{7, 9})
	test.That(t, cfg.RockThreshold, test.ShouldBeNil)

	_, err = ConfigFromAttributes(map[string]interface{}{"wrold_size": 100})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perception.json")
	contents := `{"rock_threshold": {"min_red": 100, "min_green": 90, "max_blue": 40}, "world_size": 50}`
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	cfg, err := ReadConfigFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, *cfg.RockThreshold, test.ShouldResemble, terrain.RockThresholds{MinRed: 100, MinGreen: 90, MaxBlue: 40})
	test.That(t, cfg.WorldSize, test.ShouldEqual, 50)
	test.That(t, cfg.String(), test.ShouldContainSubstring, "world_size=50")

	bad := filepath.Join(dir, "bad.json")
	test.That(t, os.WriteFile(bad, []byte("{"), 0o600), test.ShouldBeNil)
	_, err = ReadConfigFile(bad)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadConfigFile(filepath.Join(dir, "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}

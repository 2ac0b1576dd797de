package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/rover/referenceframe"
)

const simulatorLog = `Path;SteerAngle;Throttle;Brake;Speed;X_Position;Y_Position;Pitch;Yaw;Roll
IMG/robocam_0001.jpg;0;0.2;0;0.5;99.66999;85.58897;0.0001;56.82556;0.0002
IMG/robocam_0002.jpg;-15;0.2;0;0.6;99.70001;85.63;0.0003;57.1;0.0001
`

func TestReadLog(t *testing.T) {
	entries, err := ReadLog(strings.NewReader(simulatorLog), LogOptions{BaseDir: "/data/run"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, entries, test.ShouldHaveLength, 2)
	test.That(t, entries[0].ImagePath, test.ShouldEqual, filepath.Join("/data/run", "IMG", "robocam_0001.jpg"))
	test.That(t, entries[0].Pose, test.ShouldResemble, referenceframe.NewPose(99.66999, 85.58897, 56.82556))
	test.That(t, entries[1].Pose.YawDeg, test.ShouldEqual, 57.1)
}

func TestReadLogCommaAndOrder(t *testing.T) {
	log := "yaw, path, x_position, y_position\n90, /abs/a.png, 1.5, 2\n"
	entries, err := ReadLog(strings.NewReader(log), LogOptions{Comma: ',', BaseDir: "ignored"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, entries, test.ShouldHaveLength, 1)
	test.That(t, entries[0].ImagePath, test.ShouldEqual, "/abs/a.png")
	test.That(t, entries[0].Pose, test.ShouldResemble, referenceframe.NewPose(1.5, 2, 90))

	entries, err = ReadLog(strings.NewReader("Path;X_Position;Y_Position;Yaw\n"), LogOptions{})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, entries, test.ShouldBeEmpty)
}

func TestReadLogErrors(t *testing.T) {
	_, err := ReadLog(strings.NewReader(""), LogOptions{})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadLog(strings.NewReader("Path;X_Position;Yaw\na.png;1;2\n"), LogOptions{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "Y_Position")

	_, err = ReadLog(strings.NewReader("Path;X_Position;Y_Position;Yaw\na.png;1;north;2\n"), LogOptions{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "line 2")
	test.That(t, err.Error(), test.ShouldContainSubstring, "invalid Y_Position")

	_, err = ReadLog(strings.NewReader("Path;X_Position;Y_Position;Yaw\n;1;1;2\n"), LogOptions{})
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadLog(strings.NewReader("Path;X_Position;Y_Position;Yaw\na.png;1;1\n"), LogOptions{})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestReadLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "robot_log.csv")
	test.That(t, os.WriteFile(path, []byte(simulatorLog), 0o600), test.ShouldBeNil)

	entries, err := ReadLogFile(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, entries, test.ShouldHaveLength, 2)
	test.That(t, entries[1].ImagePath, test.ShouldEqual, filepath.Join(dir, "IMG", "robocam_0002.jpg"))

	_, err = ReadLogFile(filepath.Join(dir, "missing.csv"))
	test.That(t, err, test.ShouldNotBeNil)
}

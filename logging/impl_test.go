package logging

import (
	"testing"

	"go.viam.com/test"
)

func TestObservedTestLogger(t *testing.T) {
	logger, logs := NewObservedTestLogger(t)
	logger.Debugw("rectified", "width", 320)
	logger.Sublogger("terrain").WithFields("frame", 3).Warn("empty navigable mask")

	test.That(t, logs.Len(), test.ShouldEqual, 2)
	test.That(t, logs.FilterMessage("rectified").Len(), test.ShouldEqual, 1)
	entry := logs.FilterMessage("empty navigable mask").All()[0]
	test.That(t, entry.LoggerName, test.ShouldEqual, "terrain")
	test.That(t, entry.ContextMap()["frame"], test.ShouldEqual, int64(3))
}

func TestGlobal(t *testing.T) {
	prev := Global()
	defer ReplaceGlobal(prev)

	logger := NewBlankLogger("blank")
	ReplaceGlobal(logger)
	test.That(t, Global(), test.ShouldEqual, logger)
	logger.Info("dropped")
	test.That(t, logger.Sync(), test.ShouldBeNil)
}

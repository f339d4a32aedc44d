package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerSetsLevel(t *testing.T) {
	l := InitLogger(logrus.DebugLevel)
	require.NotNil(t, l)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	// same instance, new level
	l2 := InitLogger(logrus.WarnLevel)
	assert.Same(t, l, l2)
	assert.Equal(t, logrus.WarnLevel, GetLogger().GetLevel())
}

func TestGetLoggerFormatter(t *testing.T) {
	f, ok := GetLogger().Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, f.FullTimestamp)
}

func TestLoggerKeepsMultilineMessages(t *testing.T) {
	l := InitLogger(logrus.InfoLevel)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	t.Cleanup(func() { l.SetOutput(os.Stderr) })

	l.Info("Request body: {\n  \"a\": 1\n}")

	out := buf.String()
	assert.Contains(t, out, "msg=Request body: {\n  \"a\": 1\n}")
	assert.NotContains(t, out, `\n`)
}

package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogWriter_LineSpanningWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("warning: unused variable").Times(1)
	mockLogger.EXPECT().Info("done").Times(1)

	w := &logWriter{logger: mockLogger, level: "info"}

	// The subprocess may deliver a line in arbitrary chunks.
	_, err := w.Write([]byte("warning: un"))
	require.NoError(t, err)
	_, err = w.Write([]byte("used variable\ndone"))
	require.NoError(t, err)

	w.flush()
}

func TestLogWriter_MultipleLinesInOneWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("one").Times(1)
	mockLogger.EXPECT().Info("two").Times(1)

	w := &logWriter{logger: mockLogger, level: "info"}

	_, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)

	w.flush()
}

func TestLogWriter_SkipsBlankLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("output").Times(1)

	w := &logWriter{logger: mockLogger, level: "info"}

	_, err := w.Write([]byte("\n\noutput\n\n"))
	require.NoError(t, err)

	w.flush()
}

func TestLogWriter_ErrorLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	w := &logWriter{logger: mockLogger, level: "error"}

	_, err := w.Write([]byte("undefined reference to `main'\n"))
	require.NoError(t, err)

	w.flush()
}

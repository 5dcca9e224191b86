package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	logger, err := SetupLogging("debug")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Level)

	_, err = SetupLogging("loud")
	assert.Error(t, err)
}

func TestLogData(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	stop := logData.AddTiming("duration")
	logData.AddData("ownerID", int64(3))
	stop()

	entry := logData.Log()
	assert.Equal(t, int64(3), entry.Data["ownerID"])
	assert.Contains(t, entry.Data, "duration")

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, FromContext(ctx))
	assert.Nil(t, FromContext(context.Background()))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := test.NewNullLogger()

	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, FromContext(req.Context()))
		w.WriteHeader(http.StatusTeapot)
		return errors.New("short and stout")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "Handler.Test.Start", hook.Entries[0].Message)
	assert.Equal(t, "Handler.Test.Error", hook.Entries[1].Message)
	assert.Equal(t, logrus.ErrorLevel, hook.Entries[1].Level)
}

func TestHumaMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	type output struct {
		Body struct {
			OK bool `json:"ok"`
		}
	}
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*output, error) {
		FromContext(ctx).AddData("seen", true)
		out := &output{}
		out.Body.OK = true
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "Handler.ping.Complete", last.Message)
	assert.Equal(t, true, last.Data["seen"])
	assert.Equal(t, http.StatusOK, last.Data["status"])
}

package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskid/internal/adapters/telemetry"
	"go.trai.ch/taskid/internal/app"
	"go.trai.ch/taskid/internal/core/domain"
	"go.trai.ch/taskid/internal/core/ports"
	"go.trai.ch/taskid/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	input, err := domain.NewTaskDescriptor("InputText",
		domain.NewParameter("date", domain.KindDate),
		domain.NewParameter("foo", domain.KindText, domain.Repeated(),
			domain.WithDefault(mustList(t, domain.TextValue("bar")))),
		domain.NewParameter("verbose", domain.KindBoolean, domain.Insignificant(),
			domain.WithDefault(domain.BoolValue(false))),
	)
	require.NoError(t, err)

	c := domain.NewCatalog()
	require.NoError(t, c.Register(input))
	return c
}

func mustList(t *testing.T, elems ...domain.Value) domain.Value {
	t.Helper()
	v, err := domain.ListValue(elems[0].Kind(), elems...)
	require.NoError(t, err)
	return v
}

type fixture struct {
	app           *app.App
	loader        *mocks.MockCatalogLoader
	logger        *mocks.MockLogger
	fingerprinter *mocks.MockFingerprinter
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		loader:        mocks.NewMockCatalogLoader(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
	}
	f.app = app.New(f.loader, f.logger, f.fingerprinter, telemetry.NewNoOp())
	return f
}

func TestApp_Encode(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultCatalogPath).Return(testCatalog(t), nil)

	id, err := f.app.Encode("InputText", []string{"date=2014-12-29", "foo=[bar,baz-foo]", "verbose=true"})
	require.NoError(t, err)
	assert.Equal(t, "InputText(date=2014-12-29,foo=[bar,baz-foo])", id)
}

func TestApp_Encode_CustomCatalogPath(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load("other.yaml").Return(testCatalog(t), nil)

	id, err := f.app.WithCatalogPath("other.yaml").Encode("InputText", []string{"date=2014-12-29"})
	require.NoError(t, err)
	assert.Equal(t, "InputText(date=2014-12-29,foo=[bar])", id)
}

func TestApp_Encode_Errors(t *testing.T) {
	tests := []struct {
		name        string
		task        string
		args        []string
		errContains string
	}{
		{"MalformedArgument", "InputText", []string{"date"}, "argument must have the form key=value"},
		{"EmptyKey", "InputText", []string{"=x"}, "argument must have the form key=value"},
		{"UnbalancedValue", "InputText", []string{"foo=[bar"}, "invalid argument value"},
		{"MissingParameter", "InputText", nil, "failed to build task"},
		{"BadValue", "InputText", []string{"date=yesterday"}, "failed to build task"},
		{"UnknownTask", "Nope", nil, "failed to build task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)

			_, err := f.app.Encode(tt.task, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestApp_Encode_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("config load error"))

	_, err := f.app.Encode("InputText", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestApp_Parse(t *testing.T) {
	f := newFixture(t)

	name, params, err := f.app.Parse("InputText(date=2014-12-29,foo=[bar,baz-foo])")
	require.NoError(t, err)
	assert.Equal(t, "InputText", name)
	assert.Equal(t, "2014-12-29", params["date"].Scalar())
	assert.Equal(t, []string{"bar", "baz-foo"}, params["foo"].List())

	_, _, err = f.app.Parse("InputText(date")
	require.ErrorIs(t, err, domain.ErrTaskIDParse)
}

func TestApp_Resolve(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(app.DefaultCatalogPath).Return(testCatalog(t), nil)
	f.fingerprinter.EXPECT().Fingerprint(gomock.Any()).DoAndReturn(func(id string) string {
		return "fp:" + id
	}).Times(3)
	f.fingerprinter.EXPECT().InstanceFingerprint(gomock.Any()).Return("ifp").Times(3)
	f.logger.EXPECT().Info("resolved 3 task ids, 2 unique")

	results, err := f.app.Resolve(context.Background(), []string{
		"InputText(date=2014-12-29)",
		"InputText(foo=[bar],date=2014-12-29)",
		"InputText(date=2014-12-30,foo=[a, b])",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "InputText(date=2014-12-29,foo=[bar])", results[0].ID)
	assert.Equal(t, "fp:InputText(date=2014-12-29,foo=[bar])", results[0].Fingerprint)
	assert.False(t, results[0].Duplicate)

	assert.Equal(t, results[0].ID, results[1].ID)
	assert.True(t, results[1].Duplicate)
	assert.Equal(t, "InputText(foo=[bar],date=2014-12-29)", results[1].Input)

	assert.Equal(t, "InputText(date=2014-12-30,foo=[a,b])", results[2].ID)
	assert.False(t, results[2].Duplicate)
	assert.True(t, results[0].Instance.Equal(results[1].Instance))
}

func TestApp_Resolve_Error(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)
	f.fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return("fp").AnyTimes()
	f.fingerprinter.EXPECT().InstanceFingerprint(gomock.Any()).Return("ifp").AnyTimes()

	_, err := f.app.Resolve(context.Background(), []string{
		"InputText(date=2014-12-29)",
		"InputText(date=not-a-date)",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve task id")

	var parseErr *domain.ValueParseError
	if errors.As(err, &parseErr) {
		assert.Equal(t, "not-a-date", parseErr.Raw)
	}
}

func TestApp_Resolve_Canceled(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.Resolve(ctx, []string{"InputText(date=2014-12-29)"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Tasks(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)

	descs, err := f.app.Tasks()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	assert.Equal(t, "InputText", descs[0].Name())
}

func TestApp_Flatten(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "doc.yaml")
	content := strings.Join([]string{
		"b: [foo, [bar, troll]]",
		"a: 42",
		"c:",
		"  nested: true",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	leaves, err := f.app.Flatten(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"42", "foo", "bar", "troll", "true"}, leaves)

	_, err = f.app.Flatten(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read document")
}

// closeCounter is a ports.Telemetry that counts Close calls.
type closeCounter struct {
	*telemetry.NoOp
	closed   int
	closeErr error
}

func (c *closeCounter) Close() error {
	c.closed++
	return c.closeErr
}

var _ ports.Telemetry = (*closeCounter)(nil)

func TestApp_Resolve_ClosesTelemetry(t *testing.T) {
	t.Run("OnError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockCatalogLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)
		tel := &closeCounter{NoOp: telemetry.NewNoOp()}

		a := app.New(loader, mocks.NewMockLogger(ctrl), mocks.NewMockFingerprinter(ctrl), tel)
		_, err := a.Resolve(context.Background(), []string{"InputText(date=not-a-date)"})
		require.Error(t, err)
		assert.Equal(t, 1, tel.closed)
	})

	t.Run("CloseFailureIsLogged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		loader := mocks.NewMockCatalogLoader(ctrl)
		loader.EXPECT().Load(gomock.Any()).Return(testCatalog(t), nil)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any())
		log.EXPECT().Warn(gomock.Any())
		fp := mocks.NewMockFingerprinter(ctrl)
		fp.EXPECT().Fingerprint(gomock.Any()).Return("fp")
		fp.EXPECT().InstanceFingerprint(gomock.Any()).Return("ifp")
		tel := &closeCounter{NoOp: telemetry.NewNoOp(), closeErr: errors.New("tape closed")}

		a := app.New(loader, log, fp, tel)
		_, err := a.Resolve(context.Background(), []string{"InputText(date=2014-12-29)"})
		require.NoError(t, err)
		assert.Equal(t, 1, tel.closed)
	})
}

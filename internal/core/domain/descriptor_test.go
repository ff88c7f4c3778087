package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskid/internal/core/domain"
)

func TestNewTaskDescriptor(t *testing.T) {
	d, err := domain.NewTaskDescriptor("DummyTask",
		domain.NewParameter("param", domain.KindText),
		domain.NewParameter("bool_param", domain.KindBoolean),
		domain.NewParameter("insignificant_param", domain.KindText, domain.Insignificant()),
		domain.NewParameter("list_param", domain.KindInteger, domain.Repeated()),
	)
	require.NoError(t, err)

	assert.Equal(t, "DummyTask", d.Name())

	names := make([]string, 0)
	for _, p := range d.Params() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"param", "bool_param", "insignificant_param", "list_param"}, names)

	sig := make([]string, 0)
	for _, p := range d.SignificantParams() {
		sig = append(sig, p.Name)
	}
	assert.Equal(t, []string{"bool_param", "list_param", "param"}, sig)

	p, ok := d.Param("insignificant_param")
	require.True(t, ok)
	assert.False(t, p.Significant)
	assert.False(t, p.HasDefault)

	_, ok = d.Param("missing")
	assert.False(t, ok)
}

func TestNewTaskDescriptor_Errors(t *testing.T) {
	tests := []struct {
		name        string
		task        string
		params      []domain.ParameterDescriptor
		errContains string
	}{
		{
			name:        "EmptyTaskName",
			task:        "",
			errContains: "invalid task name",
		},
		{
			name:        "TaskNameWithParen",
			task:        "Bad(Name",
			errContains: "invalid task name",
		},
		{
			name: "DuplicateParameter",
			task: "T",
			params: []domain.ParameterDescriptor{
				domain.NewParameter("a", domain.KindText),
				domain.NewParameter("a", domain.KindInteger),
			},
			errContains: "duplicate parameter",
		},
		{
			name:        "ParameterNameWithSeparator",
			task:        "T",
			params:      []domain.ParameterDescriptor{domain.NewParameter("a=b", domain.KindText)},
			errContains: "invalid parameter name",
		},
		{
			name:        "EmptyParameterName",
			task:        "T",
			params:      []domain.ParameterDescriptor{domain.NewParameter("", domain.KindText)},
			errContains: "invalid parameter name",
		},
		{
			name:        "InvalidKind",
			task:        "T",
			params:      []domain.ParameterDescriptor{domain.NewParameter("a", domain.KindInvalid)},
			errContains: "unknown parameter kind",
		},
		{
			name: "DefaultOfWrongKind",
			task: "T",
			params: []domain.ParameterDescriptor{
				domain.NewParameter("a", domain.KindInteger, domain.WithDefault(domain.TextValue("1"))),
			},
			errContains: "kind mismatch",
		},
		{
			name: "ScalarDefaultForRepeated",
			task: "T",
			params: []domain.ParameterDescriptor{
				domain.NewParameter("a", domain.KindInteger, domain.Repeated(), domain.WithDefault(domain.IntValue(1))),
			},
			errContains: "kind mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTaskDescriptor(tt.task, tt.params...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

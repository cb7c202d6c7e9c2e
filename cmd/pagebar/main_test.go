package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/pagebar/internal/cli"
	"github.com/rshade/pagebar/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "pagebar", root.Use)
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "generic error", err: errors.New("boom"), want: 1},
		{name: "usage error", err: &cli.ExitCodeError{ExitCode: cli.ExitUsage, Err: cli.ErrMissingTotal}, want: 2},
		{name: "custom code", err: &cli.ExitCodeError{ExitCode: 42}, want: 42},
		{
			name: "wrapped exit code error",
			err:  fmt.Errorf("outer: %w", &cli.ExitCodeError{ExitCode: 3, Err: errors.New("inner")}),
			want: 3,
		},
		{
			name: "joined exit code error",
			err:  errors.Join(errors.New("outer"), &cli.ExitCodeError{ExitCode: 2}),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

package pkgmanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alamin-mahamud/capsesc/internal/cmdexec"
	"github.com/alamin-mahamud/capsesc/internal/errdefs"
)

func TestDetectProbeOrder(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string
	}{
		{"pacman wins over dnf", []string{"pacman", "dnf"}, "pacman"},
		{"dnf wins over apt-get", []string{"dnf", "apt-get"}, "dnf"},
		{"apt-get alone", []string{"apt-get"}, "apt-get"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, err := Detect(cmdexec.NewFake(tt.present...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, pm.Name())
		})
	}
}

func TestDetectNoneAvailable(t *testing.T) {
	pm, err := Detect(cmdexec.NewFake())
	assert.Nil(t, pm)
	require.Error(t, err)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeMissingTool))
}

func TestInstallCommands(t *testing.T) {
	tests := []struct {
		manager string
		want    []string
	}{
		{"pacman", []string{"sudo", "pacman", "-S", "--needed", "--noconfirm", "keyd"}},
		{"dnf", []string{"sudo", "dnf", "install", "-y", "keyd"}},
		{"apt-get", []string{"sudo", "apt-get", "install", "-y", "keyd"}},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			fake := cmdexec.NewFake(tt.manager)
			pm, err := Detect(fake)
			require.NoError(t, err)

			require.NoError(t, pm.Install(context.Background(), "keyd"))
			require.Len(t, fake.Calls, 1)
			assert.Equal(t, tt.want, fake.Calls[0])
		})
	}
}

func TestInstallNothing(t *testing.T) {
	fake := cmdexec.NewFake("pacman")
	pm, err := Detect(fake)
	require.NoError(t, err)

	require.NoError(t, pm.Install(context.Background()))
	assert.Empty(t, fake.Calls)
}

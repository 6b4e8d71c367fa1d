package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "nano", firstNonEmptyString("", "", "nano"))
	assert.Empty(t, firstNonEmptyString())
}

func TestCommands(t *testing.T) {
	a := Get()

	names := make([]string, 0, len(a.Commands))
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{"edit-config", "records", "reset"}, names)

	flags := map[string]bool{}
	for _, f := range a.Flags {
		for _, n := range f.Names() {
			flags[n] = true
		}
	}

	for _, want := range []string{"goal", "max-sessions", "backend", "mute", "notify", "cmd", "debug", "no-color"} {
		assert.True(t, flags[want], "missing flag --%s", want)
	}
}

func TestPrintRecordsEmpty(t *testing.T) {
	assert.NoError(t, printRecords(nil))
}

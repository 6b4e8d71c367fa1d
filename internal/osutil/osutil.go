package osutil

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const DirPermission = 0o755

// Int returns the exit code as a plain int for os.Exit.
func (e exitCode) Int() int {
	return int(e)
}

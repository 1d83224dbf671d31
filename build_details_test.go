package identcase

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withBuild sets the ldflags variables for the duration of the test.
func withBuild(t *testing.T, v, c, bt string) {
	t.Helper()
	prevV, prevC, prevBT := version, commit, buildTime
	version, commit, buildTime = v, c, bt
	t.Cleanup(func() { version, commit, buildTime = prevV, prevC, prevBT })
}

func TestBuildMetadata_Defaults(t *testing.T) {
	withBuild(t, "dev", "unknown", "unknown")

	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildTime())
	assert.Equal(t, runtime.Version(), GoVersion())
	assert.Equal(t, "identcase/dev", UserAgent())
}

func TestBuildMetadata_Release(t *testing.T) {
	withBuild(t, "v1.4.0", "3f2c9ab", "2026-10-01T12:00:00Z")

	assert.Equal(t, "identcase/v1.4.0", UserAgent())
	assert.NotContains(t, UserAgent(), " ")

	lines := strings.Split(BuildInfo(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Version: v1.4.0", lines[0])
	assert.Equal(t, "Commit: 3f2c9ab", lines[1])
	assert.Equal(t, "Build Time: 2026-10-01T12:00:00Z", lines[2])
	assert.Equal(t, "Go Version: "+runtime.Version(), lines[3])
	assert.Equal(t, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH, lines[4])
}

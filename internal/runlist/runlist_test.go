// internal/runlist/runlist_test.go
package runlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	l, err := Load(write(t, "/data/runs\n\n# nightly batch\nrun001\nrun002\n"))
	require.NoError(t, err)

	want := &List{Dir: "/data/runs", Runs: []string{"run001", "run002"}}
	if diff := cmp.Diff(want, l); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyBatch(t *testing.T) {
	l, err := Load(write(t, "/data/runs\n"))
	require.NoError(t, err)
	require.Empty(t, l.Runs)
}

func TestLoad_MissingDirLine(t *testing.T) {
	_, err := Load(write(t, "\n\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestRunPath(t *testing.T) {
	l := &List{Dir: "/data/runs"}
	require.Equal(t, filepath.Join("/data/runs", "run001.pcl"), l.RunPath("run001", ".pcl"))
	require.Equal(t, filepath.Join("/data/runs", "run001.acl"), l.RunPath("run001", ".acl"))
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	log, err := s.Load("3.11")
	require.NoError(t, err)

	assert.Equal(t, "3.11", log.Version)
	assert.Empty(t, log.Projects)

	// Loading must not create the file as a side effect
	_, err = os.Stat(s.Path("3.11"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "logs"))

	saved := &ProjectLog{
		Version: "3.11",
		Projects: []Project{
			{Name: "myapp", CreatedAt: 1700000000, LastAccessed: 1700000100},
			{Name: "other", CreatedAt: 1700000200, LastAccessed: 1700000200},
		},
	}
	require.NoError(t, s.Save(saved))

	loaded, err := s.Load("3.11")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveCreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	s := New(dir)

	require.NoError(t, s.Save(&ProjectLog{Version: "3.9", Projects: []Project{}}))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, os.WriteFile(s.Path("3.11"), []byte("{not json"), 0o644))

	_, err := s.Load("3.11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse project log")
}

func TestAddProject(t *testing.T) {
	s := New(t.TempDir())

	added, err := s.AddProject("3.11", "myapp")
	require.NoError(t, err)
	assert.True(t, added)

	log, err := s.Load("3.11")
	require.NoError(t, err)
	require.Len(t, log.Projects, 1)

	p := log.Projects[0]
	assert.Equal(t, "myapp", p.Name)
	assert.Equal(t, p.CreatedAt, p.LastAccessed)
	assert.NotZero(t, p.CreatedAt)
}

func TestAddProjectDuplicateIsNoOp(t *testing.T) {
	s := New(t.TempDir())

	added, err := s.AddProject("3.11", "foo")
	require.NoError(t, err)
	require.True(t, added)

	before, err := s.Load("3.11")
	require.NoError(t, err)

	// Re-adding must not touch last_accessed either
	added, err = s.AddProject("3.11", "foo")
	require.NoError(t, err)
	assert.False(t, added)

	after, err := s.Load("3.11")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, after.Projects, 1)
}

func TestAddProjectPreservesOrder(t *testing.T) {
	s := New(t.TempDir())

	for _, name := range []string{"first", "second", "third"} {
		added, err := s.AddProject("3.12", name)
		require.NoError(t, err)
		require.True(t, added)
	}

	log, err := s.Load("3.12")
	require.NoError(t, err)
	require.Len(t, log.Projects, 3)
	assert.Equal(t, "first", log.Projects[0].Name)
	assert.Equal(t, "second", log.Projects[1].Name)
	assert.Equal(t, "third", log.Projects[2].Name)
}

func TestPath(t *testing.T) {
	s := New("/var/log/pymanager")
	assert.Equal(t, "/var/log/pymanager/3.11.json", s.Path("3.11"))
}

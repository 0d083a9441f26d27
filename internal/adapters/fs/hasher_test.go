package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/fs"
	"go.trai.ch/mk/internal/core/domain"
)

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func sampleTarget() *domain.Target {
	return &domain.Target{
		Name:      domain.NewInternedString("nbody-c"),
		Toolchain: domain.NewInternedString("gcc"),
		Source:    domain.NewInternedString("nbody-c/main.c"),
		Output:    domain.NewInternedString("nbody-c/nbody-c"),
	}
}

func TestHasher_ComputeInputHash_Deterministic(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "nbody-c/main.c", "int main(void) { return 0; }\n")

	hasher := fs.NewHasher()
	argv := []string{"gcc", "-O3", "nbody-c/main.c", "-o", "nbody-c/nbody-c"}
	env := map[string]string{"CC": "gcc", "LANG": "C"}

	first, err := hasher.ComputeInputHash(sampleTarget(), argv, env, root)
	require.NoError(t, err)

	second, err := hasher.ComputeInputHash(sampleTarget(), argv, env, root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestHasher_ComputeInputHash_SourceSensitive(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "nbody-c/main.c", "int main(void) { return 0; }\n")

	hasher := fs.NewHasher()
	argv := []string{"gcc", "nbody-c/main.c"}

	before, err := hasher.ComputeInputHash(sampleTarget(), argv, nil, root)
	require.NoError(t, err)

	writeSource(t, root, "nbody-c/main.c", "int main(void) { return 1; }\n")

	after, err := hasher.ComputeInputHash(sampleTarget(), argv, nil, root)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_ComputeInputHash_ArgvSensitive(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "nbody-c/main.c", "int main(void) { return 0; }\n")

	hasher := fs.NewHasher()

	o3, err := hasher.ComputeInputHash(sampleTarget(), []string{"gcc", "-O3"}, nil, root)
	require.NoError(t, err)

	o2, err := hasher.ComputeInputHash(sampleTarget(), []string{"gcc", "-O2"}, nil, root)
	require.NoError(t, err)

	assert.NotEqual(t, o3, o2)
}

func TestHasher_ComputeInputHash_EnvSensitive(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "nbody-c/main.c", "int main(void) { return 0; }\n")

	hasher := fs.NewHasher()
	argv := []string{"gcc"}

	withPath, err := hasher.ComputeInputHash(sampleTarget(), argv, map[string]string{"RUSTFLAGS": "-g"}, root)
	require.NoError(t, err)

	without, err := hasher.ComputeInputHash(sampleTarget(), argv, nil, root)
	require.NoError(t, err)

	assert.NotEqual(t, withPath, without)
}

func TestHasher_ComputeInputHash_MissingSource(t *testing.T) {
	hasher := fs.NewHasher()
	_, err := hasher.ComputeInputHash(sampleTarget(), []string{"gcc"}, nil, t.TempDir())
	assert.Error(t, err)
}

func TestHasher_ComputeOutputHash(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "nbody-c/nbody-c", "\x7fELF fake binary")

	hasher := fs.NewHasher()

	hash, err := hasher.ComputeOutputHash([]string{"nbody-c/nbody-c"}, root)
	require.NoError(t, err)
	assert.Len(t, hash, 16)
}

func TestHasher_ComputeOutputHash_OrderIndependent(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.out", "one")
	writeSource(t, root, "b.out", "two")

	hasher := fs.NewHasher()

	forward, err := hasher.ComputeOutputHash([]string{"a.out", "b.out"}, root)
	require.NoError(t, err)

	reverse, err := hasher.ComputeOutputHash([]string{"b.out", "a.out"}, root)
	require.NoError(t, err)

	assert.Equal(t, forward, reverse)
}

func TestHasher_ComputeOutputHash_MissingFile(t *testing.T) {
	hasher := fs.NewHasher()
	_, err := hasher.ComputeOutputHash([]string{"ghost.out"}, t.TempDir())
	assert.Error(t, err)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "main.c", "content")

	hasher := fs.NewHasher()

	first, err := hasher.ComputeFileHash(filepath.Join(root, "main.c"))
	require.NoError(t, err)

	second, err := hasher.ComputeFileHash(filepath.Join(root, "main.c"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotZero(t, first)
}

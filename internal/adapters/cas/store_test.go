package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mk/internal/adapters/cas"
	"go.trai.ch/mk/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	store, err := cas.NewStoreAt(path)
	require.NoError(t, err)

	info := domain.BuildInfo{
		TargetName: "nbody-c",
		InputHash:  "00000000deadbeef",
		OutputHash: "00000000cafebabe",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Put(info))

	got, err := store.Get("nbody-c")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)
}

func TestStore_Get_Miss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	store, err := cas.NewStoreAt(path)
	require.NoError(t, err)

	got, err := store.Get("unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "build_info.json")

	store, err := cas.NewStoreAt(path)
	require.NoError(t, err)

	info := domain.BuildInfo{TargetName: "nbody-rs", InputHash: "0123456789abcdef"}
	require.NoError(t, store.Put(info))

	// A fresh store reads back what the first one wrote.
	reopened, err := cas.NewStoreAt(path)
	require.NoError(t, err)

	got, err := reopened.Get("nbody-rs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0123456789abcdef", got.InputHash)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := cas.NewStoreAt(path)
	assert.Error(t, err)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_info.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := cas.NewStoreAt(path)
	require.NoError(t, err)

	got, err := store.Get("anything")
	require.NoError(t, err)
	assert.Nil(t, got)
}

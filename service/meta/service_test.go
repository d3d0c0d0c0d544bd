package meta

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

type document struct {
	Name    string `yaml:"name"`
	Quantum int    `yaml:"quantum"`
}

func TestService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	srv := New(afs.New(), dir)

	require.NoError(t, srv.Save(ctx, "doc.yaml", &document{Name: "rr", Quantum: 4}))
	var loaded document
	require.NoError(t, srv.Load(ctx, filepath.Join(dir, "doc.yaml"), &loaded))
	assert.Equal(t, document{Name: "rr", Quantum: 4}, loaded)

	t.Setenv("SCHEDSIM_TEST_QUANTUM", "7")
	require.NoError(t, srv.Upload(ctx, "env.yaml", []byte("name: env\nquantum: ${env.SCHEDSIM_TEST_QUANTUM}\n")))
	loaded = document{}
	require.NoError(t, srv.Load(ctx, "env.yaml", &loaded))
	assert.Equal(t, 7, loaded.Quantum)

	err := srv.Load(ctx, "missing.yaml", &loaded)
	assert.Error(t, err)
}

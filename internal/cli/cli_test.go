package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	tests := []struct {
		in   string
		want []int
		err  bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"1", []int{1}, false},
		{"3, 0,2", []int{3, 0, 2}, false},
		{"1,,2", nil, true},
		{"a", nil, true},
	}
	for _, tt := range tests {
		got, err := Ints(tt.in)
		if tt.err {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, []string{"INDEX", "EDAT"}, Strings("INDEX, EDAT,"))
	assert.Nil(t, Strings(""))
}

func TestFloats(t *testing.T) {
	got, err := Floats("0, 0.5,1")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, got)

	_, err = Floats("1,x")
	assert.Error(t, err)
}

func TestRand(t *testing.T) {
	assert.Nil(t, Rand(0))
	assert.Equal(t, Rand(7).Float64(), Rand(7).Float64())
}

func TestLoad(t *testing.T) {
	ds, err := Load("", "species", nil)
	require.NoError(t, err)
	rows, _ := ds.Dims()
	assert.Equal(t, 150, rows)

	path := filepath.Join(t.TempDir(), "k.csv")
	require.NoError(t, os.WriteFile(path, []byte("INDEX,a,b,Cluster\n0,1,2,1\n1,3,4,2\n"), 0644))
	ds, err = Load(path, "Cluster", []string{"INDEX"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.FeatureNames())
	assert.Equal(t, []string{"Cluster 1", "Cluster 2"}, ds.TargetNames())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), "Cluster", nil)
	assert.Error(t, err)
}

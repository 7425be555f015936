package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

func TestParsePositions(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    m.PositionTable
		wantErr bool
	}{
		{"nil input", nil, m.PositionTable{}, false},
		{
			"single position",
			[]string{"YC17=AG"},
			m.PositionTable{{Key: "YC17", Candidates: "AG"}},
			false,
		},
		{
			"order preserved",
			[]string{"TA20=A", "YC17=AG"},
			m.PositionTable{{Key: "TA20", Candidates: "A"}, {Key: "YC17", Candidates: "AG"}},
			false,
		},
		{
			"empty candidates allowed",
			[]string{"GB5="},
			m.PositionTable{{Key: "GB5", Candidates: ""}},
			false,
		},
		{"missing separator", []string{"YC17AG"}, nil, true},
		{"empty key", []string{"=AG"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePositions(tt.pairs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceFlags_ToArgs(t *testing.T) {
	flags := sourceFlags{
		positions: []string{"YC17=AG"},
		table:     "compat.txt",
		structure: "mini.pdb",
		modelID:   1,
	}

	args, err := flags.toArgs()
	require.NoError(t, err)

	assert.Equal(t, m.Path("compat.txt"), args.Table)
	assert.Equal(t, m.Path("mini.pdb"), args.Structure)
	assert.Equal(t, 1, args.ModelID)
	require.Len(t, args.Positions, 1)
	assert.Equal(t, "YC17", args.Positions[0].Key)
}

func TestSourceFlags_ToArgs_InvalidPosition(t *testing.T) {
	flags := sourceFlags{positions: []string{"broken"}}

	_, err := flags.toArgs()
	assert.Error(t, err)
}

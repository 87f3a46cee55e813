package main

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/MixinNetwork/rational/config"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	require := require.New(t)

	custom := config.Default()
	reader := newReader(custom)
	err := reader.ReadFile("csv/testdata/prices.csv")
	require.Nil(err)

	var lines []string
	lines = append(lines, strings.Join(reader.FieldNames(), ";"))
	for _, rec := range reader.Records() {
		lines = append(lines, formatRecord(reader, rec))
	}
	require.Equal(`"pen; blue";1.25;10;05/03/2021`, lines[1])
	require.Equal(`"the ""best"" pad";10/3;2;01/12/2020`, lines[2])
	require.Equal(`eraser;;7;`, lines[3])

	again := newReader(custom)
	err = again.Read(strings.NewReader(strings.Join(lines, "\n")))
	require.Nil(err)
	require.Equal(reader.Records(), again.Records())
}

func TestReadCommandOutput(t *testing.T) {
	require := require.New(t)

	reader := newReader(config.Default())
	err := readCommandOutput(context.Background(), reader, "cat csv/testdata/prices.csv", 0)
	require.Nil(err)
	require.Equal(4, reader.RecordCount())
	sum, err := reader.Sum("price")
	require.Nil(err)
	require.Equal("16/3", sum.String())

	reader = newReader(config.Default())
	err = readCommandOutput(context.Background(), reader, "exit 2", 0)
	require.NotNil(err)
	require.Contains(err.Error(), "exit 2")
}

func TestValidScale(t *testing.T) {
	require := require.New(t)

	for _, s := range []int{0, 8, 18, -18} {
		scale, err := validScale(s)
		require.Nil(err)
		require.Equal(int32(s), scale)
	}
	for _, s := range []int{19, -19, 1 << 32, math.MinInt32} {
		_, err := validScale(s)
		require.NotNil(err, s)
	}
}

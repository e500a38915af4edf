package wire

import (
	"math/big"
	"testing"

	"github.com/jxon-dev/jxon/internal/cursor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendBigInt_RoundTrip(t *testing.T) {
	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(255),
		new(big.Int).Lsh(big.NewInt(1), 200),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 200)),
	}

	for _, v := range cases {
		buf := AppendBigInt(nil, v)

		got, err := ReadBigInt(cursor.New(buf))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(got), "round trip mismatch for %s", v)
	}
}

func TestReadBigInt_UnexpectedEnd(t *testing.T) {
	_, err := ReadBigInt(cursor.New(nil))
	assert.Error(t, err)
}

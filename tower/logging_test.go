package tower

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/eip1962/field"
	"github.com/consensys/eip1962/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestExtensionConstructionLogsDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))
	defer logger.Disable()

	f, err := field.NewField(big.NewInt(23))
	require.NoError(t, err)
	nr := f.NewElement()
	nr.SetUint64(5)
	NewExtension2(&nr)

	require.Contains(t, buf.String(), `"degree":2`)
	require.Contains(t, buf.String(), `"bits":5`)
	require.Contains(t, buf.String(), `"limbs":1`)

	buf.Reset()
	logger.Set(zerolog.New(&buf))

	f7, err := field.NewField(big.NewInt(7))
	require.NoError(t, err)
	nr7 := f7.NewElement()
	nr7.SetUint64(2)
	NewExtension3(&nr7)

	require.Contains(t, buf.String(), `"degree":3`)
	require.Contains(t, buf.String(), `"bits":3`)
}

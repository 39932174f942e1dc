package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRoundTrip(t *testing.T) {
	storage, err := DisplayToStorage("05.03.2020")
	require.NoError(t, err)
	assert.Equal(t, "2020-03-05", storage)

	display, err := StorageToDisplay(storage)
	require.NoError(t, err)
	assert.Equal(t, "05-03-2020", display)
}

func TestDisplayToStorageInvalid(t *testing.T) {
	for _, in := range []string{"", "31.02.2020", "2020-03-05", "5/3/2020"} {
		_, err := DisplayToStorage(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestStorageToDisplayInvalid(t *testing.T) {
	_, err := StorageToDisplay("05.03.2020")
	assert.Error(t, err)
}

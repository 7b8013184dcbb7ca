package mock_test

import (
	"testing"

	"github.com/fwojciec/hnlist"
	"github.com/fwojciec/hnlist/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ hnlist.Element = &mock.Element{}
}

func TestElement_Attr(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AttrFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		value := "thing_1"
		e := &mock.Element{
			AttrFn: func(name string) (*string, error) {
				calledWith = name
				return &value, nil
			},
		}

		got, err := e.Attr("id")

		require.NoError(t, err)
		assert.Equal(t, "id", calledWith)
		require.NotNil(t, got)
		assert.Equal(t, "thing_1", *got)
	})
}

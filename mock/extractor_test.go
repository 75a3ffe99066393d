package mock_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStore_SaveTables(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveTablesFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		s := &mock.TableStore{
			SaveTablesFn: func(region string, _ *landval.DocumentTables) error {
				calledWith = region
				return nil
			},
		}

		err := s.SaveTables("Albury", &landval.DocumentTables{})

		require.NoError(t, err)
		assert.Equal(t, "Albury", calledWith)
	})

	t.Run("returns error from SaveTablesFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("disk full")
		s := &mock.TableStore{
			SaveTablesFn: func(string, *landval.DocumentTables) error {
				return expectedErr
			},
		}

		err := s.SaveTables("Albury", &landval.DocumentTables{})

		assert.Equal(t, expectedErr, err)
	})
}

func TestTableExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ExtractFn", func(t *testing.T) {
		t.Parallel()

		want := &landval.DocumentTables{}
		e := &mock.TableExtractor{
			ExtractFn: func(io.Reader) (*landval.DocumentTables, error) {
				return want, nil
			},
		}

		got, err := e.Extract(strings.NewReader("<html></html>"))

		require.NoError(t, err)
		assert.Same(t, want, got)
	})
}

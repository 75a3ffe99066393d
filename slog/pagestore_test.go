package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/landval"
	"github.com/fwojciec/landval/mock"
	lvslog "github.com/fwojciec/landval/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingPageStore(t *testing.T) {
	t.Parallel()

	t.Run("logs saved page region and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageStore{
			SaveFn: func(context.Context, *landval.Page) error { return nil },
		}

		store := lvslog.NewLoggingPageStore(inner, debugLogger(&buf))
		err := store.Save(context.Background(), &landval.Page{
			Region: landval.Region{Code: "140", Name: "Albury"},
			HTML:   "<html></html>",
		})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save page")
		assert.Contains(t, output, "region=Albury")
		assert.Contains(t, output, "bytes=13")
	})

	t.Run("logs commit and abort outcomes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.PageStore{
			CommitFn: func() error { return nil },
			AbortFn:  func() error { return errors.New("busy") },
		}

		store := lvslog.NewLoggingPageStore(inner, debugLogger(&buf))

		require.NoError(t, store.Commit())
		require.Error(t, store.Abort())
		output := buf.String()
		assert.Contains(t, output, "commit pages")
		assert.Contains(t, output, "abort pages")
		assert.Contains(t, output, "err=busy")
	})
}

package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/palet"
	"github.com/fwojciec/palet/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryService_InsertEntry(t *testing.T) {
	t.Parallel()

	t.Run("delegates to InsertEntryFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *palet.Entry
		s := &mock.EntryService{
			InsertEntryFn: func(_ context.Context, entry *palet.Entry) error {
				calledWith = entry
				return nil
			},
		}

		entry := &palet.Entry{Name: "Firefox"}

		err := s.InsertEntry(context.Background(), entry)

		require.NoError(t, err)
		assert.Same(t, entry, calledWith)
	})
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ScanFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.Scanner{
			ScanFn: func(_ context.Context, dirs []string) ([]*palet.Application, error) {
				return []*palet.Application{{Name: dirs[0]}}, nil
			},
		}

		apps, err := s.Scan(context.Background(), []string{"/apps"})

		require.NoError(t, err)
		assert.Equal(t, "/apps", apps[0].Name)
	})
}

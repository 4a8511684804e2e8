package mock

import (
	"context"

	"github.com/fwojciec/palet"
)

// Compile-time interface verification.
var (
	_ palet.EntryService    = (*EntryService)(nil)
	_ palet.Indexer         = (*Indexer)(nil)
	_ palet.ActionableCodec = (*ActionableCodec)(nil)
)

// EntryService is a mock implementation of palet.EntryService.
type EntryService struct {
	IsUpToDateFn    func(ctx context.Context) bool
	InitializeFn    func(ctx context.Context) error
	InsertEntryFn   func(ctx context.Context, entry *palet.Entry) error
	FindEntriesFn   func(ctx context.Context, substring string) ([]*palet.Entry, error)
	DeleteEntriesFn func(ctx context.Context) error
}

func (s *EntryService) IsUpToDate(ctx context.Context) bool {
	return s.IsUpToDateFn(ctx)
}

func (s *EntryService) Initialize(ctx context.Context) error {
	return s.InitializeFn(ctx)
}

func (s *EntryService) InsertEntry(ctx context.Context, entry *palet.Entry) error {
	return s.InsertEntryFn(ctx, entry)
}

func (s *EntryService) FindEntries(ctx context.Context, substring string) ([]*palet.Entry, error) {
	return s.FindEntriesFn(ctx, substring)
}

func (s *EntryService) DeleteEntries(ctx context.Context) error {
	return s.DeleteEntriesFn(ctx)
}

// Indexer is a mock implementation of palet.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context, apps []*palet.Application, commands palet.CustomCommands) (bool, error)
}

func (i *Indexer) Index(ctx context.Context, apps []*palet.Application, commands palet.CustomCommands) (bool, error) {
	return i.IndexFn(ctx, apps, commands)
}

// ActionableCodec is a mock implementation of palet.ActionableCodec.
type ActionableCodec struct {
	EncodeFn func(a palet.Actionable) (string, error)
	DecodeFn func(s string) (palet.Actionable, error)
}

func (c *ActionableCodec) Encode(a palet.Actionable) (string, error) {
	return c.EncodeFn(a)
}

func (c *ActionableCodec) Decode(s string) (palet.Actionable, error) {
	return c.DecodeFn(s)
}

package mock

import (
	"context"

	"github.com/fwojciec/palet"
)

// Compile-time interface verification.
var (
	_ palet.DescriptorParser = (*DescriptorParser)(nil)
	_ palet.Scanner          = (*Scanner)(nil)
)

// DescriptorParser is a mock implementation of palet.DescriptorParser.
type DescriptorParser struct {
	ParseFn func(path string) (*palet.Application, error)
}

func (p *DescriptorParser) Parse(path string) (*palet.Application, error) {
	return p.ParseFn(path)
}

// Scanner is a mock implementation of palet.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, dirs []string) ([]*palet.Application, error)
}

func (s *Scanner) Scan(ctx context.Context, dirs []string) ([]*palet.Application, error) {
	return s.ScanFn(ctx, dirs)
}

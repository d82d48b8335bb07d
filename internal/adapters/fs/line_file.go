package fs

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/courier/internal/domain/config"
	"github.com/trebuchet-org/courier/internal/usecase"
)

// lineFile reads a text file one line at a time
type lineFile struct {
	path string
}

// ReadLines returns the raw lines of the file. A missing file yields an
// error wrapping fs.ErrNotExist.
func (f lineFile) ReadLines(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return lines, nil
}

// Path returns the file path
func (f lineFile) Path() string {
	return f.path
}

// SecretFileAdapter reads private keys, one per line
type SecretFileAdapter struct {
	lineFile
}

// NewSecretFileAdapter creates a new SecretFileAdapter
func NewSecretFileAdapter(cfg *config.RuntimeConfig) *SecretFileAdapter {
	return &SecretFileAdapter{lineFile{path: cfg.SecretsPath}}
}

// ProxyFileAdapter reads proxy endpoints, one per line
type ProxyFileAdapter struct {
	lineFile
}

// NewProxyFileAdapter creates a new ProxyFileAdapter
func NewProxyFileAdapter(cfg *config.RuntimeConfig) *ProxyFileAdapter {
	return &ProxyFileAdapter{lineFile{path: cfg.ProxiesPath}}
}

var (
	_ usecase.SecretSource = (*SecretFileAdapter)(nil)
	_ usecase.ProxySource  = (*ProxyFileAdapter)(nil)
)

package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffpreview"
)

// Compile-time interface verification.
var _ diffpreview.Differ = (*Differ)(nil)

// Differ wraps a Differ with file-based caching of edit operations.
type Differ struct {
	inner    diffpreview.Differ
	cacheDir string
	salt     string
}

// NewDiffer creates a new caching differ. The salt distinguishes entries of
// differently configured inner differs sharing one directory.
func NewDiffer(inner diffpreview.Differ, cacheDir, salt string) *Differ {
	return &Differ{
		inner:    inner,
		cacheDir: cacheDir,
		salt:     salt,
	}
}

// Diff returns cached edit operations or delegates to the inner differ.
func (d *Differ) Diff(ctx context.Context, oldText, newText string) ([]diffpreview.EditOperation, error) {
	hash := d.hashInput(oldText, newText)

	if cached, err := d.loadFromCache(hash); err == nil {
		return cached, nil
	}

	ops, err := d.inner.Diff(ctx, oldText, newText)
	if err != nil {
		return nil, err
	}

	// Best-effort
	_ = d.saveToCache(hash, ops)

	return ops, nil
}

func (d *Differ) hashInput(oldText, newText string) string {
	h := sha256.New()
	for _, part := range []string{d.salt, oldText, newText} {
		// Length prefixes keep ("ab","c") and ("a","bc") apart.
		fmt.Fprintf(h, "%d:%s", len(part), part)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (d *Differ) cachePath(hash string) string {
	return filepath.Join(d.cacheDir, hash+".json")
}

func (d *Differ) loadFromCache(hash string) ([]diffpreview.EditOperation, error) {
	data, err := os.ReadFile(d.cachePath(hash))
	if err != nil {
		return nil, err
	}

	var ops []diffpreview.EditOperation
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, err
	}

	return ops, nil
}

func (d *Differ) saveToCache(hash string, ops []diffpreview.EditOperation) error {
	if err := os.MkdirAll(d.cacheDir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return err
	}

	return os.WriteFile(d.cachePath(hash), data, 0644)
}

package store

import (
	"crypto/sha256"
	"fmt"

	"github.com/jward/jassdoc/internal/model"
)

// Checksum computes a deterministic digest of the batch contents, table by
// table in pool order. Run id and timestamps do not affect it.
func Checksum(b *Batch) string {
	h := sha256.New()
	for _, k := range model.Kinds() {
		for _, r := range b.Rows(k) {
			fmt.Fprintln(h, r.SQL())
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

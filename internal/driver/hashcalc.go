package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"slices"
	"strconv"
)

// Digest identifies one cached result.
type Digest [32]byte

// cacheKey: H(schema || command || options || content). Reserved names are
// sorted so that the same set always yields the same key.
func cacheKey(content [32]byte, opts *Options) Digest {
	h := sha256.New()
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], diskCacheSchemaVersion)
	_, _ = h.Write(buf[:])
	writeField(h, opts.Command.String())
	writeField(h, opts.Disambiguate.Separator)
	reserved := slices.Clone(opts.Disambiguate.Reserved)
	slices.Sort(reserved)
	writeField(h, strconv.Itoa(len(reserved)))
	for _, name := range reserved {
		writeField(h, name)
	}
	writeField(h, strconv.Itoa(opts.Format.IndentWidth))
	writeField(h, strconv.FormatBool(opts.Format.UseTabs))
	_, _ = h.Write(content[:])

	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// writeField пишет длину и байты, чтобы соседние поля не склеивались.
func writeField(h interface{ Write([]byte) (int, error) }, s string) {
	_, _ = h.Write([]byte(strconv.Itoa(len(s)) + ":" + s))
}

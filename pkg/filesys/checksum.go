package filesys

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rogpeppe/go-internal/dirhash"
	"github.com/zeebo/xxh3"
)

// ChecksumBytes returns the xxh3-128 digest of data as a hex string.
func ChecksumBytes(data []byte) string {
	sum := xxh3.Hash128(data)
	return fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}

func hashXXH3(files []string, open func(string) (io.ReadCloser, error)) (string, error) {
	h := xxh3.New()
	files = append([]string(nil), files...)
	sort.Strings(files)
	for _, file := range files {
		if strings.Contains(file, "\n") {
			return "", errors.New("dirhash: filenames with newlines are not supported")
		}
		r, err := open(file)
		if err != nil {
			return "", err
		}
		hf := xxh3.New()
		_, err = io.Copy(hf, r)
		r.Close()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%x  %s\n", hf.Sum(nil), file)
	}
	return "xxh3:" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}

// DirectoryChecksum returns a checksum over every file under dir,
// stable across runs for an unchanged tree.
func DirectoryChecksum(dir string) (string, error) {
	return dirhash.HashDir(dir, "", hashXXH3)
}

// FileChecksum returns the checksum of a single file on disk.
func FileChecksum(path string) (string, error) {
	return hashXXH3([]string{path}, func(name string) (io.ReadCloser, error) {
		return os.Open(name)
	})
}

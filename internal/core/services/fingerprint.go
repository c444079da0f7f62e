package services

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"iris-serving-service/internal/core/domain"
)

// ComputeFingerprint hashes the contents of sources in the given order.
// Only bytes contribute, never paths or timestamps, so byte-identical
// deployments agree regardless of where they are installed. Each source is
// length-prefixed so that moving bytes between files changes the digest.
//
// It is meant to be called once at startup; the result is passed by value to
// whatever needs it.
func ComputeFingerprint(sources ...string) (domain.Fingerprint, error) {
	if len(sources) == 0 {
		return "", fmt.Errorf("%w: no sources configured", domain.ErrFingerprintSource)
	}

	h := sha256.New()
	for _, src := range sources {
		if err := hashFile(h, src); err != nil {
			return "", fmt.Errorf("%w: %s: %v", domain.ErrFingerprintSource, src, err)
		}
	}
	return domain.Fingerprint(hex.EncodeToString(h.Sum(nil))), nil
}

func hashFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}

	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(info.Size()))
	if _, err := w.Write(size[:]); err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

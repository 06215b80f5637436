package util

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrInvalidFileName is returned for names that are empty or try to escape
// the owner's directory.
var ErrInvalidFileName = errors.New("invalid file name")

const maxFileNameLen = 120

// CleanFileName keeps the last path element of an uploaded name, drops
// control characters and shortens it to maxFileNameLen bytes while keeping
// the extension.
func CleanFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidFileName
	}
	if len(name) <= maxFileNameLen {
		return name, nil
	}
	ext := path.Ext(name)
	if len(ext) > 16 {
		ext = ""
	}
	base := name[:maxFileNameLen-len(ext)]
	for !utf8.ValidString(base) {
		base = base[:len(base)-1]
	}
	return base + ext, nil
}

// OwnerKey maps an owner ID to a stable hex directory name.
func OwnerKey(ownerID string) string {
	sum := sha256.Sum256([]byte(ownerID))
	return hex.EncodeToString(sum[:])
}

// StorageKey builds "<owner key>/<uuid>_<clean name>" for a new object.
func StorageKey(ownerID, fileName string) (string, error) {
	clean, err := CleanFileName(fileName)
	if err != nil {
		return "", err
	}
	return path.Join(OwnerKey(ownerID), uuid.NewString()+"_"+clean), nil
}

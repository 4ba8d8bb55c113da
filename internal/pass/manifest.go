package pass

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// BuildManifest считает SHA-1 каждого файла набора и сериализует
// manifest.json: плоский объект имя → hex-дайджест (нижний регистр).
// Сам манифест и подпись в манифест не входят.
func BuildManifest(fs *FileSet) ([]byte, error) {
	manifest := make(map[string]string, fs.Len())
	for _, name := range fs.Names() {
		if name == FileManifest || name == FileSignature {
			continue
		}
		b, _ := fs.Get(name)
		sum := sha1.Sum(b)
		manifest[name] = hex.EncodeToString(sum[:])
	}
	out, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return out, nil
}

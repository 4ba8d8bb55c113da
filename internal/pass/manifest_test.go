package pass

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"testing"
)

func TestBuildManifestCoversExactlyPayloadFiles(t *testing.T) {
	fs := NewFileSet()
	fs.Add("pass.json", []byte(`{"formatVersion":1}`))
	fs.Add("icon.png", []byte{1, 2, 3})
	fs.Add("icon@2x.png", []byte{1, 2, 3})
	// уже лежащие манифест и подпись не хэшируются
	fs.Add(FileManifest, []byte("old"))
	fs.Add(FileSignature, []byte("old"))

	raw, err := BuildManifest(fs)
	if err != nil {
		t.Fatal(err)
	}
	var manifest map[string]string
	if err := json.Unmarshal(raw, &manifest); err != nil {
		t.Fatal(err)
	}

	want := []string{"pass.json", "icon.png", "icon@2x.png"}
	if len(manifest) != len(want) {
		t.Fatalf("manifest keys = %v", manifest)
	}
	for _, name := range want {
		digest, ok := manifest[name]
		if !ok {
			t.Fatalf("manifest missing %s", name)
		}
		b, _ := fs.Get(name)
		sum := sha1.Sum(b)
		if digest != hex.EncodeToString(sum[:]) {
			t.Errorf("%s digest = %s", name, digest)
		}
		if len(digest) != 40 {
			t.Errorf("%s digest length = %d", name, len(digest))
		}
	}
}

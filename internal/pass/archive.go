package pass

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Archive упаковывает набор файлов в ZIP (.pkpass): deflate,
// плоские имена, порядок записей — порядок вставки в FileSet.
func Archive(fs *FileSet) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, name := range fs.Names() {
		b, _ := fs.Get(name)
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", name, err)
		}
		if _, err := w.Write(b); err != nil {
			return nil, fmt.Errorf("zip write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}
	return buf.Bytes(), nil
}

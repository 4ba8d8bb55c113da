package pass

import (
	"encoding/json"
	"fmt"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
)

// Имена файлов внутри .pkpass
const (
	FilePassJSON  = "pass.json"
	FileManifest  = "manifest.json"
	FileSignature = "signature"
)

// placeholderPNG — минимальный прозрачный PNG 1x1; подставляется вместо
// отсутствующей иконки, пайплайн из-за картинок не падает
var placeholderPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x02, 0x00, 0x00, 0x00, 0x90, 0x77, 0x53,
	0xDE, 0x00, 0x00, 0x00, 0x0C, 0x49, 0x44, 0x41,
	0x54, 0x08, 0xD7, 0x63, 0xF8, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x05, 0xFE, 0xD4, 0xE7,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44,
	0xAE, 0x42, 0x60, 0x82,
}

// PlaceholderPNG возвращает копию заглушки
func PlaceholderPNG() []byte {
	out := make([]byte, len(placeholderPNG))
	copy(out, placeholderPNG)
	return out
}

// FileSet — упорядоченный набор файлов пасса; порядок вставки стабилен,
// чтобы архив собирался воспроизводимо
type FileSet struct {
	names []string
	data  map[string][]byte
}

func NewFileSet() *FileSet {
	return &FileSet{data: make(map[string][]byte)}
}

// Add добавляет или перезаписывает файл; порядок имён сохраняется
func (fs *FileSet) Add(name string, b []byte) {
	if _, ok := fs.data[name]; !ok {
		fs.names = append(fs.names, name)
	}
	fs.data[name] = b
}

// Get возвращает содержимое файла
func (fs *FileSet) Get(name string) ([]byte, bool) {
	b, ok := fs.data[name]
	return b, ok
}

// Names — имена файлов в порядке вставки (копия)
func (fs *FileSet) Names() []string {
	out := make([]string, len(fs.names))
	copy(out, fs.names)
	return out
}

func (fs *FileSet) Len() int { return len(fs.names) }

// Assemble собирает файловый набор пасса: pass.json + картинки.
// icon.png обязателен (заглушка при отсутствии); каждая картинка
// дублируется как name@2x.png теми же байтами; background кладётся
// только для eventTicket, strip — только для coupon/storeCard.
func Assemble(desc models.PassDescriptor, images models.Images, kind models.TicketKind) (*FileSet, error) {
	passJSON, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal pass.json: %w", err)
	}

	fs := NewFileSet()
	fs.Add(FilePassJSON, passJSON)

	icon := images.Icon
	if len(icon) == 0 {
		icon = PlaceholderPNG()
	}
	addImagePair(fs, "icon", icon)

	if len(images.Logo) > 0 {
		addImagePair(fs, "logo", images.Logo)
	}
	if kind == models.KindEventTicket && len(images.Background) > 0 {
		addImagePair(fs, "background", images.Background)
	}
	if (kind == models.KindCoupon || kind == models.KindStoreCard) && len(images.Strip) > 0 {
		addImagePair(fs, "strip", images.Strip)
	}
	if len(images.Thumbnail) > 0 {
		addImagePair(fs, "thumbnail", images.Thumbnail)
	}
	return fs, nil
}

// addImagePair — name.png и name@2x.png одними и теми же байтами;
// честного рендера @2x нет, это осознанное упрощение формата
func addImagePair(fs *FileSet, name string, b []byte) {
	fs.Add(name+".png", b)
	fs.Add(name+"@2x.png", b)
}

package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
	"github.com/needsomevibe/passcard/pass-service/internal/pass"
)

// Service реализует use case'ы генератора пассов: полный пайплайн
// builder → assembler → signer → packager плюс кэш по серийному номеру
type Service struct {
	store  PassStore
	signer Signer
	clock  Clock
	tokens TokenSource
	cfg    pass.Config
	log    *zap.Logger
}

func New(store PassStore, signer Signer, clock Clock, tokens TokenSource, cfg pass.Config, log *zap.Logger) *Service {
	return &Service{store: store, signer: signer, clock: clock, tokens: tokens, cfg: cfg, log: log}
}

// Create — выпуск нового пасса: свежий serial, полный пайплайн,
// запись в кэш только после успешной упаковки
func (s *Service) Create(ctx context.Context, t models.Ticket, images models.Images) (string, []byte, error) {
	serial := newSerial(s.clock.Now())
	data, err := s.generate(t, serial, images)
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Put(serial, PassEntry{Ticket: t, CreatedAt: s.clock.Now().UTC(), Data: data}); err != nil {
		return "", nil, fmt.Errorf("store pass: %w", err)
	}
	s.log.Info("pass created", zap.String("serial", serial), zap.String("kind", string(t.Kind())))
	return serial, data, nil
}

// Update — перегенерация под тем же serial; upsert, существование
// прежней записи не проверяется
func (s *Service) Update(ctx context.Context, serial string, t models.Ticket, images models.Images) ([]byte, error) {
	if !validSerial(serial) {
		return nil, ErrInvalidSerial
	}
	data, err := s.generate(t, serial, images)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(serial, PassEntry{Ticket: t, CreatedAt: s.clock.Now().UTC(), Data: data}); err != nil {
		return nil, fmt.Errorf("store pass: %w", err)
	}
	s.log.Info("pass updated", zap.String("serial", serial))
	return data, nil
}

// Get — байты пасса из памяти, иначе с диска, иначе ErrNotFound
func (s *Service) Get(ctx context.Context, serial string) ([]byte, error) {
	if !validSerial(serial) {
		return nil, ErrInvalidSerial
	}
	return s.store.Get(serial)
}

// Delete — идемпотентное удаление из памяти и с диска
func (s *Service) Delete(ctx context.Context, serial string) error {
	if !validSerial(serial) {
		return ErrInvalidSerial
	}
	if err := s.store.Delete(serial); err != nil {
		return err
	}
	s.log.Info("pass deleted", zap.String("serial", serial))
	return nil
}

// List — записи кэша в памяти; выжившие только на диске файлы
// после рестарта сюда не попадают (осознанное ограничение кэша)
func (s *Service) List(ctx context.Context) []PassSummary {
	return s.store.List()
}

// PassForDevice — запись для web-service эндпоинта обновлений;
// смотрит только в память, как и list()
func (s *Service) PassForDevice(ctx context.Context, serial string) (PassEntry, bool) {
	if !validSerial(serial) {
		return PassEntry{}, false
	}
	return s.store.GetEntry(serial)
}

// generate гоняет пайплайн целиком; никакое частичное состояние
// наружу не утекает
func (s *Service) generate(t models.Ticket, serial string, images models.Images) ([]byte, error) {
	authToken := ""
	if s.cfg.WebServiceURL != "" {
		tok, err := s.tokens.AuthToken()
		if err != nil {
			return nil, fmt.Errorf("auth token: %w", err)
		}
		authToken = tok
	}

	desc := pass.BuildDescriptor(t, serial, s.cfg, authToken)
	fs, err := pass.Assemble(desc, images, t.Kind())
	if err != nil {
		return nil, err
	}
	manifest, err := pass.BuildManifest(fs)
	if err != nil {
		return nil, err
	}
	signature, err := s.signer.Sign(manifest)
	if err != nil {
		return nil, fmt.Errorf("sign manifest: %w", err)
	}
	fs.Add(pass.FileManifest, manifest)
	fs.Add(pass.FileSignature, signature)
	return pass.Archive(fs)
}

// newSerial — "PASS-<unix millis>-<8 hex>": сортируемый по времени
// и устойчивый к коллизиям серийный номер
func newSerial(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("PASS-%d-%s", now.UnixMilli(), strings.ToUpper(hex.EncodeToString(u[:4])))
}

// validSerial отсекает серийники, непригодные как имя файла на диске
func validSerial(serial string) bool {
	if serial == "" || serial == "." || serial == ".." {
		return false
	}
	return !strings.ContainsAny(serial, "/\\")
}

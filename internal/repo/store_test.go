package repo

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/needsomevibe/passcard/pass-service/internal/models"
	"github.com/needsomevibe/passcard/pass-service/internal/service"
)

func entry(data []byte, at time.Time, eventName string) service.PassEntry {
	return service.PassEntry{
		Ticket:    models.Ticket{Variant: models.EventTicket{EventName: eventName}},
		CreatedAt: at,
		Data:      data,
	}
}

func TestStorePutGet(t *testing.T) {
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("pkpass-bytes")
	if err := s.Put("PASS-1", entry(data, time.Now(), "Launch")); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get("PASS-1")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("bytes differ")
	}
}

func TestStoreGetFallsBackToDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("persisted")
	if err := s.Put("PASS-2", entry(data, time.Now(), "")); err != nil {
		t.Fatal(err)
	}

	// новый Store поверх того же каталога имитирует рестарт процесса
	restarted, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := restarted.Get("PASS-2")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Error("disk fallback bytes differ")
	}
	// но list() дисковых выживших не видит
	if n := len(restarted.List()); n != 0 {
		t.Errorf("list after restart = %d entries", n)
	}
}

func TestStoreGetNotFound(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	if _, err := s.Get("nope"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	dir := t.TempDir()
	s, _ := NewStore(dir)
	if err := s.Put("PASS-3", entry([]byte("x"), time.Now(), "")); err != nil {
		t.Fatal(err)
	}

	if err := s.Delete("PASS-3"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "PASS-3.pkpass")); !os.IsNotExist(err) {
		t.Error("file must be removed")
	}
	// повторное удаление не ошибка
	if err := s.Delete("PASS-3"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("PASS-3"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreListSorted(t *testing.T) {
	s, _ := NewStore(t.TempDir())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_ = s.Put("PASS-B", entry([]byte("b"), base.Add(time.Minute), "Second"))
	_ = s.Put("PASS-A", entry([]byte("a"), base, "First"))

	got := s.List()
	if len(got) != 2 {
		t.Fatalf("list = %d entries", len(got))
	}
	if got[0].SerialNumber != "PASS-A" || got[1].SerialNumber != "PASS-B" {
		t.Errorf("order: %s, %s", got[0].SerialNumber, got[1].SerialNumber)
	}
	if got[0].EventName != "First" {
		t.Errorf("eventName = %q", got[0].EventName)
	}
}

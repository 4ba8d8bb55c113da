package crypto

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Имена PEM-файлов внутри каталога сертификатов
const (
	signerCertFile = "signerCert.pem"
	signerKeyFile  = "signerKey.pem"
	wwdrCertFile   = "WWDR.pem"
)

// Bundle — сертификат подписанта, его приватный ключ и промежуточный WWDR.
// Загружается один раз на старте процесса и дальше только читается,
// поэтому безопасен для конкурентного доступа без синхронизации.
type Bundle struct {
	SignerCert *x509.Certificate
	SignerKey  crypto.Signer
	WWDRCert   *x509.Certificate
}

// LoadBundle читает signerCert.pem, signerKey.pem и WWDR.pem из dir.
// Любая проблема с файлами — ошибка конфигурации: генератор без
// валидной связки не конструируется.
func LoadBundle(dir, keyPassword string) (*Bundle, error) {
	signerCert, err := loadCertificate(filepath.Join(dir, signerCertFile))
	if err != nil {
		return nil, fmt.Errorf("signer certificate: %w", err)
	}
	signerKey, err := loadPrivateKey(filepath.Join(dir, signerKeyFile), keyPassword)
	if err != nil {
		return nil, fmt.Errorf("signer key: %w", err)
	}
	wwdrCert, err := loadCertificate(filepath.Join(dir, wwdrCertFile))
	if err != nil {
		return nil, fmt.Errorf("wwdr certificate: %w", err)
	}
	return &Bundle{SignerCert: signerCert, SignerKey: signerKey, WWDRCert: wwdrCert}, nil
}

func loadCertificate(path string) (*x509.Certificate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("%s: no CERTIFICATE pem block", path)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cert, nil
}

func loadPrivateKey(path, password string) (crypto.Signer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%s: no pem block", path)
	}
	der := block.Bytes
	if x509.IsEncryptedPEMBlock(block) { //nolint:staticcheck // ключи Apple-гайда шифруются legacy RFC1423
		der, err = x509.DecryptPEMBlock(block, []byte(password)) //nolint:staticcheck
		if err != nil {
			return nil, fmt.Errorf("%s: decrypt: %w", path, err)
		}
	}
	return parsePrivateKey(der, path)
}

func parsePrivateKey(der []byte, path string) (crypto.Signer, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		signer, ok := key.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("%s: key does not implement crypto.Signer", path)
		}
		return signer, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, errors.New(path + ": unsupported private key format")
}
